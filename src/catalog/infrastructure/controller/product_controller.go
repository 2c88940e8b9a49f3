package controller

import (
	"net/http"

	"github.com/Korikanas/ncart/src/catalog/application/request"
	"github.com/Korikanas/ncart/src/catalog/application/usecase"
	"github.com/Korikanas/ncart/src/shared/infrastructure/criteria"
	"github.com/Korikanas/ncart/src/shared/infrastructure/httpx"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductController maneja las peticiones HTTP del catálogo
type ProductController struct {
	browseUC   *usecase.BrowseProductsUseCase
	featuredUC *usecase.ListFeaturedUseCase
	criteria   *criteria.QueryHelper
	logger     *zap.Logger
}

// NewProductController crea una nueva instancia del controlador
func NewProductController(browseUC *usecase.BrowseProductsUseCase, featuredUC *usecase.ListFeaturedUseCase, logger *zap.Logger) *ProductController {
	return &ProductController{
		browseUC:   browseUC,
		featuredUC: featuredUC,
		criteria:   criteria.NewQueryHelper(usecase.ProductFields...),
		logger:     logger,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.BrowseProducts)
		products.GET("/featured", c.ListFeatured)
	}

	c.logger.Info("catalog routes registered",
		zap.Strings("routes", []string{
			"GET /api/v1/products",
			"GET /api/v1/products/featured",
		}),
	)
}

// BrowseProducts busca productos: category, search, min_price, max_price, sort
func (c *ProductController) BrowseProducts(ctx *gin.Context) {
	var req request.BrowseProductsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	var ok bool
	if req.MinPrice, ok = c.priceParam(ctx, "min_price"); !ok {
		return
	}
	if req.MaxPrice, ok = c.priceParam(ctx, "max_price"); !ok {
		return
	}

	built := usecase.BuildCriteria(c.criteria.Builder(ctx), &req).Build()
	sanitized, dropped := c.criteria.Sanitize(built)
	if len(dropped) > 0 {
		c.logger.Debug("ignoring unsupported criteria fields", zap.Strings("fields", dropped))
	}

	resp, err := c.browseUC.Execute(ctx.Request.Context(), sanitized)
	if err != nil {
		httpx.WriteError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListFeatured lista los productos de entrega rápida
func (c *ProductController) ListFeatured(ctx *gin.Context) {
	resp, err := c.featuredUC.Execute(ctx.Request.Context())
	if err != nil {
		httpx.WriteError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// priceParam lee un precio opcional; si es inválido responde 400
func (c *ProductController) priceParam(ctx *gin.Context, name string) (*decimal.Decimal, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name,
		})
		return nil, false
	}
	return &price, true
}
