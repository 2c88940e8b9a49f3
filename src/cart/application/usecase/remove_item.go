package usecase

import (
	"github.com/Korikanas/ncart/src/cart/application/response"
	"github.com/Korikanas/ncart/src/cart/domain/port"
)

// RemoveItemUseCase caso de uso para quitar líneas o vaciar el carrito
type RemoveItemUseCase struct {
	carts port.CartStore
}

// NewRemoveItemUseCase crea una nueva instancia del caso de uso
func NewRemoveItemUseCase(carts port.CartStore) *RemoveItemUseCase {
	return &RemoveItemUseCase{
		carts: carts,
	}
}

// Remove elimina la línea del producto
func (uc *RemoveItemUseCase) Remove(sessionID, productID string) *response.CartResponse {
	cart := uc.carts.Get(sessionID)
	cart.RemoveItem(productID)
	return response.NewCartResponse(cart.Snapshot())
}

// Clear vacía el carrito de la sesión
func (uc *RemoveItemUseCase) Clear(sessionID string) *response.CartResponse {
	cart := uc.carts.Get(sessionID)
	cart.Clear()
	return response.NewCartResponse(cart.Snapshot())
}
