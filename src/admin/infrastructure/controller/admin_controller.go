package controller

import (
	"net/http"
	"strconv"

	"github.com/Korikanas/ncart/src/admin/application/usecase"
	"github.com/Korikanas/ncart/src/order/application/request"
	orderUseCase "github.com/Korikanas/ncart/src/order/application/usecase"
	orderController "github.com/Korikanas/ncart/src/order/infrastructure/controller"
	"github.com/Korikanas/ncart/src/shared/infrastructure/httpx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminController maneja las peticiones HTTP del panel de administración.
// Los casos de uso de órdenes llegan armados contra /admin/orders.
type AdminController struct {
	listOrdersUC *orderUseCase.ListOrdersUseCase
	transitionUC *orderUseCase.ApplyStatusTransitionUseCase
	statsUC      *usecase.DashboardStatsUseCase
	logger       *zap.Logger
}

// NewAdminController crea una nueva instancia del controlador
func NewAdminController(
	listOrdersUC *orderUseCase.ListOrdersUseCase,
	transitionUC *orderUseCase.ApplyStatusTransitionUseCase,
	statsUC *usecase.DashboardStatsUseCase,
	logger *zap.Logger,
) *AdminController {
	return &AdminController{
		listOrdersUC: listOrdersUC,
		transitionUC: transitionUC,
		statsUC:      statsUC,
		logger:       logger,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *AdminController) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		admin.GET("/orders", c.ListAllOrders)
		admin.PUT("/orders/:order_id/status", c.UpdateOrderStatus)
		admin.GET("/stats", c.Stats)
	}

	c.logger.Info("admin routes registered",
		zap.Strings("routes", []string{
			"GET /api/v1/admin/orders",
			"PUT /api/v1/admin/orders/:order_id/status",
			"GET /api/v1/admin/stats",
		}),
	)
}

// ListAllOrders lista las órdenes de todos los usuarios
func (c *AdminController) ListAllOrders(ctx *gin.Context) {
	sessionID, ok := httpx.SessionID(ctx)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	resp, err := c.listOrdersUC.Execute(ctx.Request.Context(), sessionID, httpx.AuthToken(ctx), page, pageSize)
	if err != nil {
		httpx.WriteError(ctx, c.logger, err, orderController.OrderErrors()...)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// UpdateOrderStatus cambia el estado de cualquier orden
func (c *AdminController) UpdateOrderStatus(ctx *gin.Context) {
	sessionID, ok := httpx.SessionID(ctx)
	if !ok {
		return
	}

	var req request.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.transitionUC.Execute(ctx.Request.Context(), sessionID, httpx.AuthToken(ctx), ctx.Param("order_id"), &req)
	if err != nil {
		httpx.WriteError(ctx, c.logger, err, orderController.OrderErrors()...)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Stats métricas del panel
func (c *AdminController) Stats(ctx *gin.Context) {
	sessionID, ok := httpx.SessionID(ctx)
	if !ok {
		return
	}

	resp, err := c.statsUC.Execute(ctx.Request.Context(), sessionID, httpx.AuthToken(ctx))
	if err != nil {
		httpx.WriteError(ctx, c.logger, err, orderController.OrderErrors()...)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
