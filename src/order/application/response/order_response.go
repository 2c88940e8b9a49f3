package response

import (
	"time"

	"github.com/Korikanas/ncart/src/order/domain/entity"

	"github.com/shopspring/decimal"
)

// OrderItemResponse representa un item dentro de la orden
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Image     string          `json:"image,omitempty"`
}

// TrackingStepResponse un paso del seguimiento
type TrackingStepResponse struct {
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

// CancellationResponse datos de la cancelación
type CancellationResponse struct {
	Reason      string    `json:"reason"`
	Comment     string    `json:"comment,omitempty"`
	CancelledAt time.Time `json:"cancelled_at"`
}

// OrderResponse representa una orden
type OrderResponse struct {
	OrderID              string                 `json:"order_id"`
	Status               string                 `json:"status"`
	CreatedAt            string                 `json:"created_at"`
	Items                []OrderItemResponse    `json:"items"`
	TotalItems           int                    `json:"total_items"`
	Total                decimal.Decimal        `json:"total"`
	PaymentMethod        string                 `json:"payment_method"`
	ShippingAddress      string                 `json:"shipping_address"`
	TrackingStatus       string                 `json:"tracking_status"`
	Tracking             []TrackingStepResponse `json:"tracking"`
	Cancellation         *CancellationResponse  `json:"cancellation,omitempty"`
	AvailableTransitions []string               `json:"available_transitions"`
}

// NewOrderResponse convierte la entidad a la respuesta HTTP
func NewOrderResponse(order *entity.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
			Image:     item.ImageRef,
		})
	}

	steps := make([]TrackingStepResponse, 0, len(order.Tracking.Steps))
	for _, s := range order.Tracking.Steps {
		steps = append(steps, TrackingStepResponse{
			Name:        s.Name,
			Completed:   s.Completed,
			CompletedAt: s.CompletedAt,
		})
	}

	resp := &OrderResponse{
		OrderID:              order.ID,
		Status:               string(order.Status),
		CreatedAt:            order.CreatedAt.Format(time.RFC3339),
		Items:                items,
		TotalItems:           order.TotalItems(),
		Total:                order.Total,
		PaymentMethod:        order.PaymentMethod,
		ShippingAddress:      order.ShippingAddress,
		TrackingStatus:       string(order.Tracking.Status),
		Tracking:             steps,
		AvailableTransitions: StatusNames(order.AvailableTransitions()),
	}
	if order.Cancellation != nil {
		resp.Cancellation = &CancellationResponse{
			Reason:      string(order.Cancellation.Reason),
			Comment:     order.Cancellation.Comment,
			CancelledAt: order.Cancellation.CancelledAt,
		}
	}
	return resp
}

// StatusNames convierte estados a strings
func StatusNames(statuses []entity.OrderStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

// TransitionsResponse transiciones disponibles para una orden
type TransitionsResponse struct {
	OrderID              string   `json:"order_id"`
	Status               string   `json:"status"`
	Terminal             bool     `json:"terminal"`
	AvailableTransitions []string `json:"available_transitions"`
	CancellationReasons  []string `json:"cancellation_reasons,omitempty"`
}
