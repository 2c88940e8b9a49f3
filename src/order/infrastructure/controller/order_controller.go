package controller

import (
	"net/http"
	"strconv"

	"github.com/Korikanas/ncart/src/order/application/request"
	"github.com/Korikanas/ncart/src/order/application/usecase"
	"github.com/Korikanas/ncart/src/order/domain/entity"
	"github.com/Korikanas/ncart/src/shared/infrastructure/httpx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// orderErrors sentinels con respuesta propia; el resto se mapea por tipo de fallo
var orderErrors = []httpx.ErrorMapping{
	{Err: entity.ErrNotAuthenticated, Status: http.StatusUnauthorized, Code: "login_required"},
	{Err: entity.ErrOrderNotFound, Status: http.StatusNotFound, Code: "order_not_found"},
	{Err: entity.ErrActionInFlight, Status: http.StatusConflict, Code: "action_in_flight"},
	{Err: entity.ErrOrderTerminal, Status: http.StatusConflict, Code: "order_terminal"},
	{Err: entity.ErrInvalidTransition, Status: http.StatusConflict, Code: "invalid_transition"},
	{Err: entity.ErrEmptyCart, Status: http.StatusBadRequest, Code: "empty_cart"},
	{Err: entity.ErrPaymentMethodRequired, Status: http.StatusBadRequest, Code: "payment_method_required"},
	{Err: entity.ErrUnsupportedPaymentMethod, Status: http.StatusBadRequest, Code: "unsupported_payment_method"},
	{Err: entity.ErrCancellationReasonRequired, Status: http.StatusBadRequest, Code: "cancellation_reason_required"},
	{Err: entity.ErrInvalidCancellationReason, Status: http.StatusBadRequest, Code: "invalid_cancellation_reason"},
}

// OrderErrors mapeo de errores de órdenes, compartido con el módulo admin
func OrderErrors() []httpx.ErrorMapping {
	return orderErrors
}

// OrderController maneja las peticiones HTTP para checkout y órdenes
type OrderController struct {
	checkoutUC   *usecase.CheckoutUseCase
	transitionUC *usecase.ApplyStatusTransitionUseCase
	cancelUC     *usecase.CancelOrderUseCase
	listOrdersUC *usecase.ListOrdersUseCase
	getOrderUC   *usecase.GetOrderUseCase
	endSessionUC *usecase.EndSessionUseCase
	logger       *zap.Logger
}

// NewOrderController crea una nueva instancia del controlador
func NewOrderController(
	checkoutUC *usecase.CheckoutUseCase,
	transitionUC *usecase.ApplyStatusTransitionUseCase,
	cancelUC *usecase.CancelOrderUseCase,
	listOrdersUC *usecase.ListOrdersUseCase,
	getOrderUC *usecase.GetOrderUseCase,
	endSessionUC *usecase.EndSessionUseCase,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		checkoutUC:   checkoutUC,
		transitionUC: transitionUC,
		cancelUC:     cancelUC,
		listOrdersUC: listOrdersUC,
		getOrderUC:   getOrderUC,
		endSessionUC: endSessionUC,
		logger:       logger,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *OrderController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/checkout", c.Checkout)
	router.DELETE("/session", c.EndSession)

	orders := router.Group("/orders")
	{
		orders.GET("", c.ListOrders)
		orders.GET("/:order_id", c.GetOrder)
		orders.GET("/:order_id/transitions", c.GetTransitions)
		orders.PUT("/:order_id/status", c.UpdateStatus)
		orders.POST("/:order_id/cancel", c.CancelOrder)
	}

	c.logger.Info("order routes registered",
		zap.Strings("routes", []string{
			"POST /api/v1/checkout",
			"DELETE /api/v1/session",
			"GET /api/v1/orders",
			"GET /api/v1/orders/:order_id",
			"GET /api/v1/orders/:order_id/transitions",
			"PUT /api/v1/orders/:order_id/status",
			"POST /api/v1/orders/:order_id/cancel",
		}),
	)
}

// Checkout convierte el carrito de la sesión en una orden
func (c *OrderController) Checkout(ctx *gin.Context) {
	sessionID, ok := httpx.SessionID(ctx)
	if !ok {
		return
	}

	var req request.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.checkoutUC.Execute(ctx.Request.Context(), sessionID, httpx.AuthToken(ctx), &req)
	if err != nil {
		httpx.WriteError(ctx, c.logger, err, orderErrors...)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// ListOrders lista las órdenes del usuario (refresca la cache de la sesión)
func (c *OrderController) ListOrders(ctx *gin.Context) {
	sessionID, ok := httpx.SessionID(ctx)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	resp, err := c.listOrdersUC.Execute(ctx.Request.Context(), sessionID, httpx.AuthToken(ctx), page, pageSize)
	if err != nil {
		httpx.WriteError(ctx, c.logger, err, orderErrors...)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetOrder obtiene una orden de la cache de la sesión
func (c *OrderController) GetOrder(ctx *gin.Context) {
	sessionID, ok := httpx.SessionID(ctx)
	if !ok {
		return
	}

	resp, err := c.getOrderUC.Execute(sessionID, ctx.Param("order_id"))
	if err != nil {
		httpx.WriteError(ctx, c.logger, err, orderErrors...)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetTransitions retorna los estados a los que puede pasar la orden
func (c *OrderController) GetTransitions(ctx *gin.Context) {
	sessionID, ok := httpx.SessionID(ctx)
	if !ok {
		return
	}

	resp, err := c.getOrderUC.Transitions(sessionID, ctx.Param("order_id"))
	if err != nil {
		httpx.WriteError(ctx, c.logger, err, orderErrors...)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// UpdateStatus aplica una transición de estado
func (c *OrderController) UpdateStatus(ctx *gin.Context) {
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
		httpx.WriteError(ctx, c.logger, err, orderErrors...)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// CancelOrder cancela la orden con motivo obligatorio
func (c *OrderController) CancelOrder(ctx *gin.Context) {
	sessionID, ok := httpx.SessionID(ctx)
	if !ok {
		return
	}

	var req request.CancelOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.cancelUC.Execute(ctx.Request.Context(), sessionID, httpx.AuthToken(ctx), ctx.Param("order_id"), &req)
	if err != nil {
		httpx.WriteError(ctx, c.logger, err, orderErrors...)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// EndSession descarta carrito y órdenes de la sesión (logout)
func (c *OrderController) EndSession(ctx *gin.Context) {
	sessionID, ok := httpx.SessionID(ctx)
	if !ok {
		return
	}
	c.endSessionUC.Execute(sessionID)
	ctx.Status(http.StatusNoContent)
}
