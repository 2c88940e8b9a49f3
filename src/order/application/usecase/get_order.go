package usecase

import (
	"github.com/Korikanas/ncart/src/order/application/response"
	"github.com/Korikanas/ncart/src/order/domain/entity"
	"github.com/Korikanas/ncart/src/order/domain/port"
	"github.com/Korikanas/ncart/src/shared/domain/failure"
)

const opGetOrder = "get_order"

// GetOrderUseCase caso de uso para obtener una orden por ID
type GetOrderUseCase struct {
	orders port.OrderStore
}

// NewGetOrderUseCase crea una nueva instancia del caso de uso
func NewGetOrderUseCase(orders port.OrderStore) *GetOrderUseCase {
	return &GetOrderUseCase{
		orders: orders,
	}
}

// Execute ejecuta la obtención de la orden desde la cache de la sesión
func (uc *GetOrderUseCase) Execute(sessionID, orderID string) (*response.OrderResponse, error) {
	order, err := uc.find(sessionID, orderID)
	if err != nil {
		return nil, err
	}
	return response.NewOrderResponse(order), nil
}

// Transitions retorna los estados destino disponibles para la orden
func (uc *GetOrderUseCase) Transitions(sessionID, orderID string) (*response.TransitionsResponse, error) {
	order, err := uc.find(sessionID, orderID)
	if err != nil {
		return nil, err
	}

	resp := &response.TransitionsResponse{
		OrderID:              order.ID,
		Status:               string(order.Status),
		Terminal:             order.IsTerminal(),
		AvailableTransitions: response.StatusNames(order.AvailableTransitions()),
	}
	if !order.IsTerminal() {
		for _, r := range entity.CancellationReasons() {
			resp.CancellationReasons = append(resp.CancellationReasons, string(r))
		}
	}
	return resp, nil
}

func (uc *GetOrderUseCase) find(sessionID, orderID string) (*entity.Order, error) {
	if orderID == "" {
		return nil, failure.NewPrecondition(opGetOrder, entity.ErrOrderIDRequired)
	}
	order, ok := uc.orders.Get(sessionID, orderID)
	if !ok {
		return nil, failure.NewPrecondition(opGetOrder, entity.ErrOrderNotFound)
	}
	return order, nil
}
