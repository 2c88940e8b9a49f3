package controller

import (
	"net/http"

	"github.com/Korikanas/ncart/src/cart/application/request"
	"github.com/Korikanas/ncart/src/cart/application/usecase"
	"github.com/Korikanas/ncart/src/cart/domain/entity"
	"github.com/Korikanas/ncart/src/shared/infrastructure/httpx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var cartErrors = []httpx.ErrorMapping{
	{Err: entity.ErrProductIDRequired, Status: http.StatusBadRequest, Code: "product_id_required"},
	{Err: entity.ErrProductNotFound, Status: http.StatusNotFound, Code: "product_not_found"},
	{Err: entity.ErrInvalidPrice, Status: http.StatusBadRequest, Code: "invalid_price"},
}

// CartController maneja las peticiones HTTP del carrito de la sesión
type CartController struct {
	addItemUC    *usecase.AddItemUseCase
	quantityUC   *usecase.UpdateQuantityUseCase
	removeItemUC *usecase.RemoveItemUseCase
	getCartUC    *usecase.GetCartUseCase
	logger       *zap.Logger
}

// NewCartController crea una nueva instancia del controlador
func NewCartController(
	addItemUC *usecase.AddItemUseCase,
	quantityUC *usecase.UpdateQuantityUseCase,
	removeItemUC *usecase.RemoveItemUseCase,
	getCartUC *usecase.GetCartUseCase,
	logger *zap.Logger,
) *CartController {
	return &CartController{
		addItemUC:    addItemUC,
		quantityUC:   quantityUC,
		removeItemUC: removeItemUC,
		getCartUC:    getCartUC,
		logger:       logger,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CartController) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		cart.GET("", c.GetCart)
		cart.DELETE("", c.ClearCart)
		cart.POST("/items", c.AddItem)
		cart.PATCH("/items/:product_id", c.ChangeQuantity)
		cart.PUT("/items/:product_id", c.SetQuantity)
		cart.DELETE("/items/:product_id", c.RemoveItem)
	}

	c.logger.Info("cart routes registered",
		zap.Strings("routes", []string{
			"GET /api/v1/cart",
			"DELETE /api/v1/cart",
			"POST /api/v1/cart/items",
			"PATCH /api/v1/cart/items/:product_id",
			"PUT /api/v1/cart/items/:product_id",
			"DELETE /api/v1/cart/items/:product_id",
		}),
	)
}

// GetCart retorna el carrito con sus totales
func (c *CartController) GetCart(ctx *gin.Context) {
	sessionID, ok := httpx.SessionID(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, c.getCartUC.Execute(sessionID))
}

// AddItem agrega un producto (o incrementa su cantidad)
func (c *CartController) AddItem(ctx *gin.Context) {
	sessionID, ok := httpx.SessionID(ctx)
	if !ok {
		return
	}

	var req request.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.addItemUC.Execute(sessionID, &req)
	if err != nil {
		httpx.WriteError(ctx, c.logger, err, cartErrors...)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ChangeQuantity aplica un delta a la cantidad (mínimo 1)
func (c *CartController) ChangeQuantity(ctx *gin.Context) {
	sessionID, ok := httpx.SessionID(ctx)
	if !ok {
		return
	}

	var req request.ChangeQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, c.quantityUC.Change(sessionID, ctx.Param("product_id"), req.Delta))
}

// SetQuantity fija la cantidad; 0 o menos elimina la línea
func (c *CartController) SetQuantity(ctx *gin.Context) {
	sessionID, ok := httpx.SessionID(ctx)
	if !ok {
		return
	}

	var req request.SetQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, c.quantityUC.Set(sessionID, ctx.Param("product_id"), *req.Quantity))
}

// RemoveItem elimina una línea del carrito
func (c *CartController) RemoveItem(ctx *gin.Context) {
	sessionID, ok := httpx.SessionID(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, c.removeItemUC.Remove(sessionID, ctx.Param("product_id")))
}

// ClearCart vacía el carrito
func (c *CartController) ClearCart(ctx *gin.Context) {
	sessionID, ok := httpx.SessionID(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, c.removeItemUC.Clear(sessionID))
}
