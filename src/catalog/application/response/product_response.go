package response

import (
	"github.com/Korikanas/ncart/src/catalog/domain/entity"

	"github.com/shopspring/decimal"
)

// ProductResponse representa un producto del catálogo
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Image        string          `json:"image,omitempty"`
	Rating       int             `json:"rating"`
	DeliveryTime string          `json:"delivery_time,omitempty"`
}

// ProductListResponse listado de productos
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	TotalCount int               `json:"total_count"`
}

// NewProductListResponse convierte las entidades a la respuesta HTTP
func NewProductListResponse(products []entity.Product) *ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ProductResponse{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Category:     p.Category,
			Price:        p.Price,
			Image:        p.Image,
			Rating:       p.Rating,
			DeliveryTime: p.DeliveryTime,
		})
	}
	return &ProductListResponse{Items: items, TotalCount: len(items)}
}
