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

const opUpdateStatus = "update_order_status"

// ApplyStatusTransitionUseCase cambia el estado de una orden en cache
// y lo confirma con el backend
type ApplyStatusTransitionUseCase struct {
	gateway  port.OrderGateway
	orders   port.OrderStore
	guard    *inflight.Guard
	observer port.ActionObserver
	opts     entity.TransitionOptions
	logger   *zap.Logger
	now      func() time.Time
}

// NewApplyStatusTransitionUseCase crea una nueva instancia del caso de uso
func NewApplyStatusTransitionUseCase(
	gateway port.OrderGateway,
	orders port.OrderStore,
	guard *inflight.Guard,
	observer port.ActionObserver,
	opts entity.TransitionOptions,
	logger *zap.Logger,
) *ApplyStatusTransitionUseCase {
	return &ApplyStatusTransitionUseCase{
		gateway:  gateway,
		orders:   orders,
		guard:    guard,
		observer: observer,
		opts:     opts,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj (tests)
func (uc *ApplyStatusTransitionUseCase) WithClock(now func() time.Time) *ApplyStatusTransitionUseCase {
	uc.now = now
	return uc
}

// Execute aplica la transición pedida. Si el backend falla la orden en
// cache queda como estaba; si responde, su versión reemplaza a la local.
func (uc *ApplyStatusTransitionUseCase) Execute(ctx context.Context, sessionID, authToken, orderID string, req *request.UpdateStatusRequest) (*response.OrderResponse, error) {
	order, err := uc.execute(ctx, sessionID, authToken, orderID, req)
	if uc.observer != nil {
		uc.observer.ObserveTransition(req.Status, metrics.ResultOf(err))
	}
	if err != nil {
		return nil, err
	}
	return response.NewOrderResponse(order), nil
}

func (uc *ApplyStatusTransitionUseCase) execute(ctx context.Context, sessionID, authToken, orderID string, req *request.UpdateStatusRequest) (*entity.Order, error) {
	if orderID == "" {
		return nil, failure.NewPrecondition(opUpdateStatus, entity.ErrOrderIDRequired)
	}
	if authToken == "" {
		return nil, failure.NewPrecondition(opUpdateStatus, entity.ErrNotAuthenticated)
	}

	current, ok := uc.orders.Get(sessionID, orderID)
	if !ok {
		return nil, failure.NewPrecondition(opUpdateStatus, entity.ErrOrderNotFound)
	}

	var cancel *entity.CancellationRequest
	if req.Cancellation != nil {
		cancel = &entity.CancellationRequest{
			Reason:  entity.CancellationReason(req.Cancellation.Reason),
			Comment: req.Cancellation.Comment,
		}
	}

	next, err := current.WithStatus(entity.OrderStatus(req.Status), cancel, uc.now(), uc.opts)
	if err != nil {
		return nil, failure.NewPrecondition(opUpdateStatus, err)
	}

	release, ok := uc.guard.Acquire(inflight.Key(opUpdateStatus, sessionID, orderID))
	if !ok {
		return nil, failure.NewPrecondition(opUpdateStatus, entity.ErrActionInFlight)
	}
	defer release()

	saved, err := uc.gateway.Update(ctx, authToken, next)
	if err != nil {
		uc.logger.Warn("status update failed, cached order kept",
			zap.String("order_id", orderID),
			zap.String("from", string(current.Status)),
			zap.String("to", req.Status),
			zap.Error(err),
		)
		return nil, err
	}

	uc.orders.Upsert(sessionID, saved)

	uc.logger.Info("order status updated",
		zap.String("order_id", saved.ID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(saved.Status)),
	)
	return saved, nil
}
