package usecase

import (
	"context"

	"github.com/Korikanas/ncart/src/order/application/request"
	"github.com/Korikanas/ncart/src/order/application/response"
	"github.com/Korikanas/ncart/src/order/domain/entity"
)

// CancelOrderUseCase caso de uso para cancelar una orden con motivo
type CancelOrderUseCase struct {
	transition *ApplyStatusTransitionUseCase
}

// NewCancelOrderUseCase crea una nueva instancia del caso de uso
func NewCancelOrderUseCase(transition *ApplyStatusTransitionUseCase) *CancelOrderUseCase {
	return &CancelOrderUseCase{
		transition: transition,
	}
}

// Execute ejecuta la cancelación; el motivo es obligatorio
func (uc *CancelOrderUseCase) Execute(ctx context.Context, sessionID, authToken, orderID string, req *request.CancelOrderRequest) (*response.OrderResponse, error) {
	return uc.transition.Execute(ctx, sessionID, authToken, orderID, &request.UpdateStatusRequest{
		Status: string(entity.OrderStatusCancelled),
		Cancellation: &request.CancellationRequest{
			Reason:  req.Reason,
			Comment: req.Comment,
		},
	})
}
