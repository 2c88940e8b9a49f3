package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Korikanas/ncart/src/order/domain/entity"
	"github.com/Korikanas/ncart/src/shared/infrastructure/client"
)

// Operaciones registradas en métricas
const (
	OpCreateOrder = "create_order"
	OpUpdateOrder = "update_order"
	OpListOrders  = "list_orders"
)

// OrderClient cliente del recurso de órdenes del backend REST
type OrderClient struct {
	rest     *client.RestClient
	basePath string
	opPrefix string
}

// NewOrderClient crea el cliente para /orders (cliente de la tienda)
func NewOrderClient(rest *client.RestClient) *OrderClient {
	return &OrderClient{rest: rest, basePath: "/orders"}
}

// NewAdminOrderClient crea el cliente para /admin/orders
func NewAdminOrderClient(rest *client.RestClient) *OrderClient {
	return &OrderClient{rest: rest, basePath: "/admin/orders", opPrefix: "admin_"}
}

// Create envía la orden nueva vía POST y retorna la orden persistida
func (c *OrderClient) Create(ctx context.Context, authToken string, order *entity.Order) (*entity.Order, error) {
	var resp wireOrder
	if err := c.rest.Do(ctx, c.opPrefix+OpCreateOrder, http.MethodPost, c.basePath, authToken, toWireOrder(order), &resp); err != nil {
		return nil, err
	}
	return c.confirmed(resp, order), nil
}

// Update envía status, tracking y cancelación vía PUT /{id}
func (c *OrderClient) Update(ctx context.Context, authToken string, order *entity.Order) (*entity.Order, error) {
	if order.ID == "" {
		return nil, entity.ErrOrderIDRequired
	}

	path := fmt.Sprintf("%s/%s", c.basePath, url.PathEscape(order.ID))
	var resp wireOrder
	if err := c.rest.Do(ctx, c.opPrefix+OpUpdateOrder, http.MethodPut, path, authToken, toWireStatusUpdate(order), &resp); err != nil {
		return nil, err
	}
	return c.confirmed(resp, order), nil
}

// List obtiene las órdenes visibles para la credencial
func (c *OrderClient) List(ctx context.Context, authToken string) ([]*entity.Order, error) {
	var resp []wireOrder
	if err := c.rest.Do(ctx, c.opPrefix+OpListOrders, http.MethodGet, c.basePath, authToken, nil, &resp); err != nil {
		return nil, err
	}

	orders := make([]*entity.Order, 0, len(resp))
	for _, w := range resp {
		orders = append(orders, normalizeOrder(w))
	}
	return orders, nil
}

// confirmed normaliza la respuesta del servidor. Un 2xx sin cuerpo
// confirma la orden enviada tal cual.
func (c *OrderClient) confirmed(resp wireOrder, sent *entity.Order) *entity.Order {
	if resp.ID == "" && resp.MongoID == "" && resp.Status == "" {
		return sent.Clone()
	}
	return normalizeOrder(resp)
}
