package client

import (
	"github.com/Korikanas/ncart/src/order/domain/entity"
)

// firstNonEmpty retorna el primer valor no vacío
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// normalizeOrder convierte cualquier representación del backend a la
// forma canónica. El resto del código no mira qué campo de id vino.
func normalizeOrder(w wireOrder) *entity.Order {
	order := &entity.Order{
		ID:              firstNonEmpty(w.MongoID, w.ID),
		Total:           w.Total.Decimal,
		Status:          entity.OrderStatus(w.Status),
		PaymentMethod:   w.PaymentMethod,
		ShippingAddress: w.Address,
	}

	switch {
	case w.Date != nil:
		order.CreatedAt = *w.Date
	case w.CreatedAt != nil:
		order.CreatedAt = *w.CreatedAt
	}

	order.Items = make([]entity.OrderItem, 0, len(w.Items))
	for _, item := range w.Items {
		qty := item.Qty
		if qty == 0 {
			qty = item.Quantity
		}
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: firstNonEmpty(item.MongoID, item.ID, item.ProductID),
			Name:      item.Name,
			UnitPrice: item.Price.Decimal,
			Quantity:  qty,
			ImageRef:  firstNonEmpty(item.Image, item.Img),
		})
	}

	order.Tracking = normalizeTracking(w.Tracking, order.Status)

	// cancellationInfo solo acompaña a una orden cancelada, y siempre la
	// acompaña: sin motivo del backend queda como "Other"
	if order.Status == entity.OrderStatusCancelled {
		info := &entity.CancellationInfo{Reason: entity.ReasonOther}
		if r := w.CancellationReason; r != nil {
			if r.Reason != "" {
				info.Reason = entity.CancellationReason(r.Reason)
			}
			info.Comment = r.Comment
			if r.CancelledAt != nil {
				info.CancelledAt = *r.CancelledAt
			}
		}
		order.Cancellation = info
	}

	return order
}

// normalizeTracking reconstruye siempre la secuencia fija de pasos y copia
// los pasos del backend que coinciden por nombre. Pasos desconocidos se
// descartan y los faltantes quedan pendientes.
func normalizeTracking(w *wireTracking, status entity.OrderStatus) entity.Tracking {
	steps := make([]entity.TrackingStep, len(entity.StepNames))
	for i, name := range entity.StepNames {
		steps[i] = entity.TrackingStep{Name: name}
	}
	t := entity.Tracking{Status: status, Steps: steps}
	if w == nil {
		return t
	}
	if w.Status != "" {
		t.Status = entity.OrderStatus(w.Status)
	}

	for _, s := range w.Steps {
		for i := range t.Steps {
			if t.Steps[i].Name != s.Name || !s.Completed {
				continue
			}
			t.Steps[i].Completed = true
			if s.Date != nil {
				at := *s.Date
				t.Steps[i].CompletedAt = &at
			}
		}
	}
	return t
}
