package entity

// OrderStatus representa el estado de una orden.
// El backend puede devolver valores fuera de esta lista; se conservan tal cual.
type OrderStatus string

const (
	OrderStatusProcessing     OrderStatus = "Processing"
	OrderStatusShipped        OrderStatus = "Shipped"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

// transiciones permitidas desde los estados conocidos no terminales
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
}

// IsTerminal indica si la orden ya no admite transiciones
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// AvailableTransitions retorna los estados destino que la UI puede ofrecer
func (s OrderStatus) AvailableTransitions() []OrderStatus {
	if s.IsTerminal() {
		return nil
	}
	if next, ok := allowedTransitions[s]; ok {
		out := make([]OrderStatus, len(next))
		copy(out, next)
		return out
	}
	// estado definido por el backend (ej. "Out for Delivery")
	return []OrderStatus{OrderStatusDelivered, OrderStatusCancelled}
}

// CanTransitionTo indica si s -> target está permitido.
// Reaplicar el estado actual sobre una orden no terminal está permitido.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if s == target {
		return true
	}
	for _, next := range s.AvailableTransitions() {
		if next == target {
			return true
		}
	}
	return false
}
