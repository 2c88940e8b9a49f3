package usecase

import (
	"github.com/Korikanas/ncart/src/cart/application/response"
	"github.com/Korikanas/ncart/src/cart/domain/port"
)

// UpdateQuantityUseCase caso de uso para modificar cantidades
type UpdateQuantityUseCase struct {
	carts port.CartStore
}

// NewUpdateQuantityUseCase crea una nueva instancia del caso de uso
func NewUpdateQuantityUseCase(carts port.CartStore) *UpdateQuantityUseCase {
	return &UpdateQuantityUseCase{
		carts: carts,
	}
}

// Change aplica un delta con piso en 1
func (uc *UpdateQuantityUseCase) Change(sessionID, productID string, delta int) *response.CartResponse {
	cart := uc.carts.Get(sessionID)
	cart.ChangeQuantity(productID, delta)
	return response.NewCartResponse(cart.Snapshot())
}

// Set fija la cantidad; 0 o negativa elimina la línea
func (uc *UpdateQuantityUseCase) Set(sessionID, productID string, quantity int) *response.CartResponse {
	cart := uc.carts.Get(sessionID)
	cart.SetQuantity(productID, quantity)
	return response.NewCartResponse(cart.Snapshot())
}
