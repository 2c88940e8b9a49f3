package client

import (
	"context"
	"net/http"

	"github.com/Korikanas/ncart/src/catalog/domain/entity"
	"github.com/Korikanas/ncart/src/shared/infrastructure/client"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// Operaciones registradas en métricas
const (
	OpListProducts = "list_products"
	OpListFeatured = "list_featured_products"
)

// wireProduct producto tal como lo devuelve el backend; acepta _id/id,
// description/desc e img/image
type wireProduct struct {
	ID           string          `json:"id"`
	MongoID      string          `json:"_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Desc         string          `json:"desc"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Img          string          `json:"img"`
	Image        string          `json:"image"`
	Rating       float64         `json:"rating"`
	DeliveryTime string          `json:"deliveryTime"`
}

// CatalogClient cliente del recurso de productos del backend REST.
// Lecturas simultáneas del mismo recurso comparten una sola llamada.
type CatalogClient struct {
	rest  *client.RestClient
	group singleflight.Group
}

// NewCatalogClient crea una nueva instancia del cliente
func NewCatalogClient(rest *client.RestClient) *CatalogClient {
	return &CatalogClient{rest: rest}
}

// ListProducts obtiene todos los productos (GET /products)
func (c *CatalogClient) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return c.fetch(ctx, OpListProducts, "/products")
}

// ListFeatured obtiene los productos de entrega rápida (GET /products/7m)
func (c *CatalogClient) ListFeatured(ctx context.Context) ([]entity.Product, error) {
	return c.fetch(ctx, OpListFeatured, "/products/"+entity.DeliveryExpress)
}

func (c *CatalogClient) fetch(ctx context.Context, op, path string) ([]entity.Product, error) {
	v, err, _ := c.group.Do(path, func() (interface{}, error) {
		var resp []wireProduct
		if err := c.rest.Do(ctx, op, http.MethodGet, path, "", nil, &resp); err != nil {
			return nil, err
		}
		products := make([]entity.Product, 0, len(resp))
		for _, w := range resp {
			products = append(products, normalizeProduct(w))
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}

	// cada llamador recibe su propia copia del slice compartido
	shared := v.([]entity.Product)
	out := make([]entity.Product, len(shared))
	copy(out, shared)
	return out, nil
}

func normalizeProduct(w wireProduct) entity.Product {
	id := w.MongoID
	if id == "" {
		id = w.ID
	}
	description := w.Description
	if description == "" {
		description = w.Desc
	}
	image := w.Img
	if image == "" {
		image = w.Image
	}
	return entity.Product{
		ID:           id,
		Name:         w.Name,
		Description:  description,
		Category:     w.Category,
		Price:        w.Price,
		Image:        image,
		Rating:       int(w.Rating),
		DeliveryTime: w.DeliveryTime,
	}
}
