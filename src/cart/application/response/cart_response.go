package response

import (
	"github.com/Korikanas/ncart/src/cart/domain/entity"

	"github.com/shopspring/decimal"
)

// CartItemResponse representa una línea en la respuesta
type CartItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Image     string          `json:"image,omitempty"`
}

// CartResponse representa el carrito de la sesión con sus totales
type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Subtotal  decimal.Decimal    `json:"subtotal"`
}

// NewCartResponse construye la respuesta a partir de un snapshot
func NewCartResponse(snap entity.Snapshot) *CartResponse {
	items := make([]CartItemResponse, 0, len(snap.Items))
	for _, item := range snap.Items {
		items = append(items, CartItemResponse{
			ProductID: item.ID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
			Image:     item.ImageRef,
		})
	}
	return &CartResponse{
		Items:     items,
		ItemCount: snap.ItemCount,
		Subtotal:  snap.Subtotal,
	}
}
