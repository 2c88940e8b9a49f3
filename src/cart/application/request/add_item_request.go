package request

import "github.com/shopspring/decimal"

// AddItemRequest representa la petición para agregar un producto al carrito.
// Si el catálogo conoce el producto se usan sus datos; si no, los del body.
type AddItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
}
