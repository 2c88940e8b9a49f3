package entity

import (
	"github.com/shopspring/decimal"
)

// Product es la vista mínima de un producto que necesita el carrito
type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	ImageRef string
}

// LineItem representa una línea del carrito (un producto y su cantidad)
// Nombre, precio e imagen se capturan al insertar y no se refrescan
type LineItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	ImageRef  string          `json:"image_ref,omitempty"`
}

// NewLineItem crea una línea con cantidad 1 a partir de un producto
func NewLineItem(p Product) LineItem {
	return LineItem{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
		ImageRef:  p.ImageRef,
	}
}

// Subtotal retorna cantidad × precio unitario
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}
