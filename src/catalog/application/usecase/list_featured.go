package usecase

import (
	"context"

	"github.com/Korikanas/ncart/src/catalog/application/response"
	"github.com/Korikanas/ncart/src/catalog/domain/port"
)

// ListFeaturedUseCase productos de la tienda de entrega rápida
type ListFeaturedUseCase struct {
	gateway port.ProductGateway
	index   port.ProductIndex
}

// NewListFeaturedUseCase crea una nueva instancia del caso de uso
func NewListFeaturedUseCase(gateway port.ProductGateway, index port.ProductIndex) *ListFeaturedUseCase {
	return &ListFeaturedUseCase{gateway: gateway, index: index}
}

// Execute ejecuta el listado
func (uc *ListFeaturedUseCase) Execute(ctx context.Context) (*response.ProductListResponse, error) {
	products, err := uc.gateway.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}
	if uc.index != nil {
		uc.index.Load(products)
	}
	return response.NewProductListResponse(products), nil
}
