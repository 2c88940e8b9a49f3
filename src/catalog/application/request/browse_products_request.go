package request

import "github.com/shopspring/decimal"

// Valores de orden por precio
const (
	SortDefault = "default"
	SortAsc     = "asc"
	SortDesc    = "desc"
)

// BrowseProductsRequest parámetros de búsqueda del catálogo
type BrowseProductsRequest struct {
	Category string           `form:"category"`
	Search   string           `form:"search"`
	MinPrice *decimal.Decimal `form:"-"`
	MaxPrice *decimal.Decimal `form:"-"`
	Sort     string           `form:"sort"`
}
