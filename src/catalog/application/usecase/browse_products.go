package usecase

import (
	"context"
	"strings"

	"github.com/Korikanas/ncart/src/catalog/application/request"
	"github.com/Korikanas/ncart/src/catalog/application/response"
	"github.com/Korikanas/ncart/src/catalog/domain/entity"
	"github.com/Korikanas/ncart/src/catalog/domain/port"
	domainCriteria "github.com/Korikanas/ncart/src/shared/domain/criteria"
	"github.com/Korikanas/ncart/src/shared/infrastructure/criteria"

	"go.uber.org/zap"
)

// ProductFields campos por los que se puede filtrar u ordenar
var ProductFields = []string{"category", "search", "price", "name", "rating", "delivery_time"}

// BrowseProductsUseCase caso de uso para buscar productos del catálogo
type BrowseProductsUseCase struct {
	gateway   port.ProductGateway
	index     port.ProductIndex
	evaluator *criteria.MemoryCriteriaEvaluator
	logger    *zap.Logger
}

// NewBrowseProductsUseCase crea una nueva instancia del caso de uso
func NewBrowseProductsUseCase(gateway port.ProductGateway, index port.ProductIndex, logger *zap.Logger) *BrowseProductsUseCase {
	return &BrowseProductsUseCase{
		gateway:   gateway,
		index:     index,
		evaluator: criteria.NewMemoryCriteriaEvaluator(),
		logger:    logger,
	}
}

// BuildCriteria traduce la búsqueda a criterios: categoría ("all" no filtra),
// texto sobre nombre y descripción, rango de precio y orden por precio
func BuildCriteria(base *domainCriteria.CriteriaBuilder, req *request.BrowseProductsRequest) *domainCriteria.CriteriaBuilder {
	if category := strings.TrimSpace(req.Category); category != "" && !strings.EqualFold(category, entity.CategoryAll) {
		base.Where("category", domainCriteria.OpEqual, category)
	}
	if q := strings.TrimSpace(req.Search); q != "" {
		base.Where("search", domainCriteria.OpLike, q)
	}
	if req.MinPrice != nil {
		base.Where("price", domainCriteria.OpGreaterThanOrEqual, *req.MinPrice)
	}
	if req.MaxPrice != nil {
		base.Where("price", domainCriteria.OpLessThanOrEqual, *req.MaxPrice)
	}
	switch strings.ToLower(req.Sort) {
	case request.SortAsc:
		base.OrderBy("price", domainCriteria.ASC)
	case request.SortDesc:
		base.OrderBy("price", domainCriteria.DESC)
	}
	return base
}

// Execute obtiene el catálogo y aplica los criterios en memoria
func (uc *BrowseProductsUseCase) Execute(ctx context.Context, c domainCriteria.Criteria) (*response.ProductListResponse, error) {
	products, err := uc.gateway.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if uc.index != nil {
		uc.index.Load(products)
	}

	result := criteria.Apply(uc.evaluator, products, c)
	uc.logger.Debug("products browsed",
		zap.Int("catalog_size", len(products)),
		zap.Int("filters", len(c.Filters.Items)),
		zap.Int("results", len(result)),
	)
	return response.NewProductListResponse(result), nil
}
