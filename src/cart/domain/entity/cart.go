package entity

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Totals valores derivados del carrito, siempre recalculados
type Totals struct {
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Snapshot copia independiente del carrito usada en el checkout
type Snapshot struct {
	Items     []LineItem      `json:"items"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// IsEmpty indica si el snapshot no tiene líneas
func (s Snapshot) IsEmpty() bool {
	return len(s.Items) == 0
}

// Cart es el contenedor de estado del carrito de una sesión.
// Toda mutación pasa por AddItem, ChangeQuantity, SetQuantity, RemoveItem y Clear.
type Cart struct {
	mu    sync.RWMutex
	items []LineItem
}

// NewCart crea un carrito vacío
func NewCart() *Cart {
	return &Cart{}
}

// AddItem agrega un producto. Si ya existe una línea con el mismo ID
// incrementa su cantidad en 1 sin tocar nombre, precio ni imagen.
func (c *Cart) AddItem(p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.indexOf(p.ID); idx >= 0 {
		c.items[idx].Quantity++
		return
	}
	c.items = append(c.items, NewLineItem(p))
}

// ChangeQuantity aplica delta con piso en 1. No-op si el ID no existe.
func (c *Cart) ChangeQuantity(id string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return
	}
	c.items[idx].Quantity = max(1, c.items[idx].Quantity+delta)
	c.pruneEmpty()
}

// SetQuantity fija la cantidad de una línea; cantidad <= 0 elimina la línea
func (c *Cart) SetQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return
	}
	c.items[idx].Quantity = quantity
	c.pruneEmpty()
}

// RemoveItem elimina la línea con el ID dado. No-op si no existe.
func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
}

// RemoveOrdered descuenta las cantidades de un snapshot ya convertido en
// orden. Lo agregado al carrito después del snapshot se conserva.
func (c *Cart) RemoveOrdered(snap Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ordered := range snap.Items {
		if idx := c.indexOf(ordered.ID); idx >= 0 {
			c.items[idx].Quantity -= ordered.Quantity
		}
	}
	c.pruneEmpty()
}

// Clear vacía el carrito
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items retorna una copia de las líneas en orden de inserción
func (c *Cart) Items() []LineItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyItems()
}

// Totals recalcula itemCount y subtotal sobre las líneas actuales
func (c *Cart) Totals() Totals {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.totals()
}

// Snapshot retorna una copia profunda del carrito con sus totales
func (c *Cart) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t := c.totals()
	return Snapshot{
		Items:     c.copyItems(),
		ItemCount: t.ItemCount,
		Subtotal:  t.Subtotal,
	}
}

func (c *Cart) totals() Totals {
	t := Totals{Subtotal: decimal.Zero}
	for _, item := range c.items {
		t.ItemCount += item.Quantity
		t.Subtotal = t.Subtotal.Add(item.Subtotal())
	}
	return t
}

func (c *Cart) copyItems() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// pruneEmpty descarta líneas con cantidad <= 0
func (c *Cart) pruneEmpty() {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	c.items = kept
}
