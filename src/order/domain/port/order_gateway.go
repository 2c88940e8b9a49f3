package port

import (
	"context"

	cartEntity "github.com/Korikanas/ncart/src/cart/domain/entity"
	"github.com/Korikanas/ncart/src/order/domain/entity"
)

// OrderGateway define las llamadas al backend REST de órdenes.
// Las órdenes devueltas ya están normalizadas.
type OrderGateway interface {
	Create(ctx context.Context, authToken string, order *entity.Order) (*entity.Order, error)
	Update(ctx context.Context, authToken string, order *entity.Order) (*entity.Order, error)
	List(ctx context.Context, authToken string) ([]*entity.Order, error)
}

// CartSource da acceso al carrito de la sesión durante el checkout
type CartSource interface {
	Snapshot(sessionID string) cartEntity.Snapshot
	RemoveOrdered(sessionID string, snap cartEntity.Snapshot)
}

// OrderStore copia local de las órdenes de cada sesión
type OrderStore interface {
	Replace(sessionID string, orders []*entity.Order)
	Prepend(sessionID string, order *entity.Order)
	Upsert(sessionID string, order *entity.Order)
	Get(sessionID, orderID string) (*entity.Order, bool)
	List(sessionID string) []*entity.Order
}

// PaymentMethods resuelve un código o nombre de método de pago
type PaymentMethods interface {
	Resolve(codeOrName string) (string, bool)
}

// ActionObserver recibe el resultado de checkout y transiciones (métricas)
type ActionObserver interface {
	ObserveCheckout(result string)
	ObserveTransition(status, result string)
}

// SessionDropper descarta el estado local de una sesión
type SessionDropper interface {
	Drop(sessionID string)
}
