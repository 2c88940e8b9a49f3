package cache

import (
	"sync"

	cartEntity "github.com/Korikanas/ncart/src/cart/domain/entity"
	"github.com/Korikanas/ncart/src/catalog/domain/entity"
)

// ProductCache último catálogo leído, indexado por id
type ProductCache struct {
	products map[string]entity.Product
	mu       sync.RWMutex
}

// NewProductCache crea un nuevo cache de productos
func NewProductCache() *ProductCache {
	return &ProductCache{
		products: make(map[string]entity.Product),
	}
}

// Load agrega o actualiza los productos leídos
func (c *ProductCache) Load(products []entity.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range products {
		if p.ID == "" {
			continue
		}
		c.products[p.ID] = p
	}
}

// FindProduct implementa la búsqueda que usa el carrito
func (c *ProductCache) FindProduct(id string) (cartEntity.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[id]
	if !ok {
		return cartEntity.Product{}, false
	}
	return p.ToCartProduct(), true
}

// Len cantidad de productos conocidos
func (c *ProductCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
