package port

import "github.com/Korikanas/ncart/src/cart/domain/entity"

// CartStore da acceso al carrito de cada sesión
type CartStore interface {
	// Get retorna el carrito de la sesión, creándolo vacío si no existe
	Get(sessionID string) *entity.Cart
	// Drop descarta el carrito de la sesión
	Drop(sessionID string)
}

// ProductLookup resuelve un producto del catálogo por ID
type ProductLookup interface {
	FindProduct(id string) (entity.Product, bool)
}
