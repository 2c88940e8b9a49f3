package port

import (
	"context"

	"github.com/Korikanas/ncart/src/catalog/domain/entity"
)

// ProductGateway lectura del catálogo del backend REST
type ProductGateway interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	ListFeatured(ctx context.Context) ([]entity.Product, error)
}

// ProductIndex guarda el último catálogo leído para que el carrito
// pueda resolver productos por id
type ProductIndex interface {
	Load(products []entity.Product)
}
