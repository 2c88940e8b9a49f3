package cache

import (
	"sync"

	"github.com/Korikanas/ncart/src/cart/domain/entity"
)

// CartCache cache en memoria de los carritos, uno por sesión.
// Los carritos no se persisten: un reinicio arranca con carritos vacíos.
type CartCache struct {
	carts map[string]*entity.Cart
	mu    sync.RWMutex
}

// NewCartCache crea un nuevo cache de carritos
func NewCartCache() *CartCache {
	return &CartCache{
		carts: make(map[string]*entity.Cart),
	}
}

// Get obtiene el carrito de la sesión; lo crea vacío la primera vez
func (c *CartCache) Get(sessionID string) *entity.Cart {
	c.mu.RLock()
	cart, ok := c.carts[sessionID]
	c.mu.RUnlock()
	if ok {
		return cart
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cart, ok = c.carts[sessionID]; ok {
		return cart
	}
	cart = entity.NewCart()
	c.carts[sessionID] = cart
	return cart
}

// Snapshot retorna la copia del carrito de la sesión
func (c *CartCache) Snapshot(sessionID string) entity.Snapshot {
	return c.Get(sessionID).Snapshot()
}

// RemoveOrdered descuenta del carrito de la sesión las líneas del snapshot ordenado
func (c *CartCache) RemoveOrdered(sessionID string, snap entity.Snapshot) {
	c.Get(sessionID).RemoveOrdered(snap)
}

// Drop descarta el carrito de la sesión
func (c *CartCache) Drop(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.carts, sessionID)
}
