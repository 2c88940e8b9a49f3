package usecase

import (
	"github.com/Korikanas/ncart/src/cart/application/response"
	"github.com/Korikanas/ncart/src/cart/domain/port"
)

// GetCartUseCase caso de uso para obtener el carrito
type GetCartUseCase struct {
	carts port.CartStore
}

// NewGetCartUseCase crea una nueva instancia del caso de uso
func NewGetCartUseCase(carts port.CartStore) *GetCartUseCase {
	return &GetCartUseCase{
		carts: carts,
	}
}

// Execute retorna el carrito con totales recalculados
func (uc *GetCartUseCase) Execute(sessionID string) *response.CartResponse {
	return response.NewCartResponse(uc.carts.Get(sessionID).Snapshot())
}
