package usecase

import (
	"context"

	orderEntity "github.com/Korikanas/ncart/src/order/domain/entity"
	"github.com/Korikanas/ncart/src/order/domain/port"
	"github.com/Korikanas/ncart/src/shared/domain/failure"
)

// fetchOrders lee todas las órdenes del backend de administración y
// refresca la cache de la sesión
func fetchOrders(ctx context.Context, op string, gateway port.OrderGateway, store port.OrderStore, sessionID, authToken string) ([]*orderEntity.Order, error) {
	if authToken == "" {
		return nil, failure.NewPrecondition(op, orderEntity.ErrNotAuthenticated)
	}
	orders, err := gateway.List(ctx, authToken)
	if err != nil {
		return nil, err
	}
	store.Replace(sessionID, orders)
	return orders, nil
}
