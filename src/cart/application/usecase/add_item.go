package usecase

import (
	"github.com/Korikanas/ncart/src/cart/application/request"
	"github.com/Korikanas/ncart/src/cart/application/response"
	"github.com/Korikanas/ncart/src/cart/domain/entity"
	"github.com/Korikanas/ncart/src/cart/domain/port"

	"go.uber.org/zap"
)

// AddItemUseCase caso de uso para agregar un producto al carrito
type AddItemUseCase struct {
	carts   port.CartStore
	catalog port.ProductLookup
	logger  *zap.Logger
}

// NewAddItemUseCase crea una nueva instancia del caso de uso.
// catalog puede ser nil: en ese caso se usan los datos del request.
func NewAddItemUseCase(carts port.CartStore, catalog port.ProductLookup, logger *zap.Logger) *AddItemUseCase {
	return &AddItemUseCase{
		carts:   carts,
		catalog: catalog,
		logger:  logger,
	}
}

// Execute agrega el producto al carrito de la sesión
func (uc *AddItemUseCase) Execute(sessionID string, req *request.AddItemRequest) (*response.CartResponse, error) {
	product, err := uc.resolveProduct(req)
	if err != nil {
		return nil, err
	}

	cart := uc.carts.Get(sessionID)
	cart.AddItem(product)

	snap := cart.Snapshot()
	uc.logger.Debug("item added to cart",
		zap.String("session_id", sessionID),
		zap.String("product_id", product.ID),
		zap.Int("item_count", snap.ItemCount),
	)
	return response.NewCartResponse(snap), nil
}

func (uc *AddItemUseCase) resolveProduct(req *request.AddItemRequest) (entity.Product, error) {
	if req.ProductID == "" {
		return entity.Product{}, entity.ErrProductIDRequired
	}
	if uc.catalog != nil {
		if p, ok := uc.catalog.FindProduct(req.ProductID); ok {
			return p, nil
		}
	}
	if req.Name == "" {
		return entity.Product{}, entity.ErrProductNotFound
	}
	if req.Price.IsNegative() {
		return entity.Product{}, entity.ErrInvalidPrice
	}
	return entity.Product{
		ID:       req.ProductID,
		Name:     req.Name,
		Price:    req.Price,
		ImageRef: req.Image,
	}, nil
}
