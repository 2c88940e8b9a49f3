package usecase

import (
	"context"
	"time"

	"github.com/Korikanas/ncart/src/order/application/request"
	"github.com/Korikanas/ncart/src/order/application/response"
	"github.com/Korikanas/ncart/src/order/domain/entity"
	"github.com/Korikanas/ncart/src/order/domain/port"
	"github.com/Korikanas/ncart/src/shared/domain/failure"
	"github.com/Korikanas/ncart/src/shared/infrastructure/inflight"
	"github.com/Korikanas/ncart/src/shared/infrastructure/metrics"

	"go.uber.org/zap"
)

const opCheckout = "checkout"

// CheckoutUseCase convierte el carrito de la sesión en una orden
type CheckoutUseCase struct {
	carts    port.CartSource
	gateway  port.OrderGateway
	orders   port.OrderStore
	payments port.PaymentMethods
	guard    *inflight.Guard
	observer port.ActionObserver
	logger   *zap.Logger
	now      func() time.Time
}

// NewCheckoutUseCase crea una nueva instancia del caso de uso
func NewCheckoutUseCase(
	carts port.CartSource,
	gateway port.OrderGateway,
	orders port.OrderStore,
	payments port.PaymentMethods,
	guard *inflight.Guard,
	observer port.ActionObserver,
	logger *zap.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		carts:    carts,
		gateway:  gateway,
		orders:   orders,
		payments: payments,
		guard:    guard,
		observer: observer,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj (tests)
func (uc *CheckoutUseCase) WithClock(now func() time.Time) *CheckoutUseCase {
	uc.now = now
	return uc
}

// Execute ejecuta el checkout:
// 1. Validar precondiciones (carrito, credencial, método de pago, acción en curso)
// 2. Armar la orden a partir del snapshot del carrito
// 3. Enviarla al backend
// 4. Solo si el backend la acepta: guardar la orden y quitar del carrito lo ordenado
func (uc *CheckoutUseCase) Execute(ctx context.Context, sessionID, authToken string, req *request.CheckoutRequest) (*response.OrderResponse, error) {
	order, err := uc.execute(ctx, sessionID, authToken, req)
	if uc.observer != nil {
		uc.observer.ObserveCheckout(metrics.ResultOf(err))
	}
	if err != nil {
		return nil, err
	}
	return response.NewOrderResponse(order), nil
}

func (uc *CheckoutUseCase) execute(ctx context.Context, sessionID, authToken string, req *request.CheckoutRequest) (*entity.Order, error) {
	snap := uc.carts.Snapshot(sessionID)
	if snap.IsEmpty() {
		return nil, failure.NewPrecondition(opCheckout, entity.ErrEmptyCart)
	}
	if authToken == "" {
		return nil, failure.NewPrecondition(opCheckout, entity.ErrNotAuthenticated)
	}
	if req.PaymentMethod == "" {
		return nil, failure.NewPrecondition(opCheckout, entity.ErrPaymentMethodRequired)
	}
	paymentMethod, ok := uc.payments.Resolve(req.PaymentMethod)
	if !ok {
		return nil, failure.NewPrecondition(opCheckout, entity.ErrUnsupportedPaymentMethod)
	}

	release, ok := uc.guard.Acquire(inflight.Key(opCheckout, sessionID))
	if !ok {
		return nil, failure.NewPrecondition(opCheckout, entity.ErrActionInFlight)
	}
	defer release()

	order, err := entity.NewOrder(snap, paymentMethod, req.ShippingAddress, uc.now())
	if err != nil {
		return nil, failure.NewPrecondition(opCheckout, err)
	}

	saved, err := uc.gateway.Create(ctx, authToken, order)
	if err != nil {
		uc.logger.Warn("checkout failed, cart kept",
			zap.String("session_id", sessionID),
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.orders.Prepend(sessionID, saved)
	uc.carts.RemoveOrdered(sessionID, snap)

	uc.logger.Info("order placed",
		zap.String("session_id", sessionID),
		zap.String("order_id", saved.ID),
		zap.String("total", saved.Total.String()),
		zap.Int("items", saved.TotalItems()),
	)
	return saved, nil
}
