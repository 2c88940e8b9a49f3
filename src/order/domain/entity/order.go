package entity

import (
	"fmt"
	"strings"
	"time"

	cartEntity "github.com/Korikanas/ncart/src/cart/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem copia de una línea del carrito al momento del checkout
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	ImageRef  string          `json:"image_ref,omitempty"`
}

// Subtotal retorna cantidad × precio unitario
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order representa una orden (Aggregate Root).
// Items, Total y PaymentMethod no cambian después del checkout;
// solo Status, Tracking y Cancellation cambian por transiciones.
type Order struct {
	ID              string            `json:"id"`
	CreatedAt       time.Time         `json:"created_at"`
	Items           []OrderItem       `json:"items"`
	Total           decimal.Decimal   `json:"total"`
	Status          OrderStatus       `json:"status"`
	Tracking        Tracking          `json:"tracking"`
	PaymentMethod   string            `json:"payment_method"`
	ShippingAddress string            `json:"shipping_address"`
	Cancellation    *CancellationInfo `json:"cancellation,omitempty"`
}

// TransitionOptions políticas de actualización del seguimiento
type TransitionOptions struct {
	// CompleteSkippedSteps completa también los pasos anteriores al destino
	CompleteSkippedSteps bool
}

// NewOrder crea una orden a partir del snapshot del carrito.
// El id es provisional: el backend puede asignar el suyo.
func NewOrder(snap cartEntity.Snapshot, paymentMethod, shippingAddress string, now time.Time) (*Order, error) {
	if snap.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if paymentMethod == "" {
		return nil, ErrPaymentMethodRequired
	}

	items := make([]OrderItem, 0, len(snap.Items))
	total := decimal.Zero
	for _, li := range snap.Items {
		item := OrderItem{
			ProductID: li.ID,
			Name:      li.Name,
			UnitPrice: li.UnitPrice,
			Quantity:  li.Quantity,
			ImageRef:  li.ImageRef,
		}
		total = total.Add(item.Subtotal())
		items = append(items, item)
	}

	return &Order{
		ID:              uuid.New().String(),
		CreatedAt:       now,
		Items:           items,
		Total:           total,
		Status:          OrderStatusProcessing,
		Tracking:        NewTracking(now),
		PaymentMethod:   paymentMethod,
		ShippingAddress: shippingAddress,
	}, nil
}

// TotalItems retorna la suma de cantidades
func (o *Order) TotalItems() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

// IsTerminal indica si la orden ya no admite transiciones
func (o *Order) IsTerminal() bool {
	return o.Status.IsTerminal()
}

// AvailableTransitions estados destino permitidos desde el estado actual
func (o *Order) AvailableTransitions() []OrderStatus {
	return o.Status.AvailableTransitions()
}

// Clone copia profunda de la orden
func (o *Order) Clone() *Order {
	c := *o
	c.Items = make([]OrderItem, len(o.Items))
	copy(c.Items, o.Items)
	c.Tracking = o.Tracking.Clone()
	if o.Cancellation != nil {
		info := *o.Cancellation
		c.Cancellation = &info
	}
	return &c
}

// WithStatus calcula la orden resultante de aplicar newStatus.
// No modifica o: la copia es provisional hasta que el backend la confirme.
func (o *Order) WithStatus(newStatus OrderStatus, cancel *CancellationRequest, now time.Time, opts TransitionOptions) (*Order, error) {
	if newStatus == "" {
		return nil, ErrStatusRequired
	}
	if o.IsTerminal() {
		return nil, fmt.Errorf("%w: order %s is %s", ErrOrderTerminal, o.ID, o.Status)
	}
	if !o.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, newStatus)
	}
	if newStatus == OrderStatusCancelled {
		if err := cancel.Validate(); err != nil {
			return nil, err
		}
	}

	next := o.Clone()
	next.Tracking.CompleteStep(string(newStatus), now, opts.CompleteSkippedSteps)
	next.Tracking.Status = newStatus
	next.Status = newStatus
	next.Cancellation = nil
	if newStatus == OrderStatusCancelled {
		next.Cancellation = &CancellationInfo{
			Reason:      cancel.Reason,
			Comment:     strings.TrimSpace(cancel.Comment),
			CancelledAt: now,
		}
	}
	return next, nil
}
