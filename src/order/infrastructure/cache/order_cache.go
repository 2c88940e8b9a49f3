package cache

import (
	"sync"

	"github.com/Korikanas/ncart/src/order/domain/entity"
)

// OrderCache copia local de las órdenes de cada sesión.
// Siempre se reconcilia con la representación devuelta por el backend.
type OrderCache struct {
	orders map[string][]*entity.Order // sessionID -> órdenes, más reciente primero
	mu     sync.RWMutex
}

// NewOrderCache crea un nuevo cache de órdenes
func NewOrderCache() *OrderCache {
	return &OrderCache{
		orders: make(map[string][]*entity.Order),
	}
}

// Replace reemplaza todas las órdenes de la sesión
func (c *OrderCache) Replace(sessionID string, orders []*entity.Order) {
	cloned := make([]*entity.Order, len(orders))
	for i, o := range orders {
		cloned[i] = o.Clone()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders[sessionID] = cloned
}

// Prepend agrega una orden recién creada al inicio
func (c *OrderCache) Prepend(sessionID string, order *entity.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders[sessionID] = append([]*entity.Order{order.Clone()}, c.orders[sessionID]...)
}

// Upsert reemplaza la orden con el mismo ID o la agrega al inicio
func (c *OrderCache) Upsert(sessionID string, order *entity.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()

	list := c.orders[sessionID]
	for i, o := range list {
		if o.ID == order.ID {
			list[i] = order.Clone()
			return
		}
	}
	c.orders[sessionID] = append([]*entity.Order{order.Clone()}, list...)
}

// Get obtiene una copia de la orden
func (c *OrderCache) Get(sessionID, orderID string) (*entity.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, o := range c.orders[sessionID] {
		if o.ID == orderID {
			return o.Clone(), true
		}
	}
	return nil, false
}

// List retorna copias de las órdenes de la sesión
func (c *OrderCache) List(sessionID string) []*entity.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := c.orders[sessionID]
	out := make([]*entity.Order, len(list))
	for i, o := range list {
		out[i] = o.Clone()
	}
	return out
}

// Drop descarta las órdenes de la sesión (logout)
func (c *OrderCache) Drop(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.orders, sessionID)
}
