package entity

import (
	"strings"

	cartEntity "github.com/Korikanas/ncart/src/cart/domain/entity"

	"github.com/shopspring/decimal"
)

// CategoryAll valor de categoría que no filtra
const CategoryAll = "all"

// DeliveryExpress entrega rápida de la tienda "7m"
const DeliveryExpress = "7m"

// Product producto del catálogo, ya normalizado
type Product struct {
	ID           string
	Name         string
	Description  string
	Category     string
	Price        decimal.Decimal
	Image        string
	Rating       int
	DeliveryTime string
}

// FieldValue expone los campos filtrables del producto.
// "search" combina nombre y descripción.
func (p Product) FieldValue(field string) (interface{}, bool) {
	switch field {
	case "id":
		return p.ID, true
	case "name":
		return p.Name, true
	case "category":
		return p.Category, true
	case "price":
		return p.Price, true
	case "rating":
		return p.Rating, true
	case "delivery_time":
		return p.DeliveryTime, true
	case "search":
		return strings.TrimSpace(p.Name + " " + p.Description), true
	}
	return nil, false
}

// ToCartProduct datos que el carrito captura al agregar el producto
func (p Product) ToCartProduct() cartEntity.Product {
	return cartEntity.Product{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		ImageRef: p.Image,
	}
}
