package entity

import "time"

// Nombres de los pasos de seguimiento, en orden
const (
	StepOrderPlaced    = "Order Placed"
	StepProcessing     = "Processing"
	StepShipped        = "Shipped"
	StepOutForDelivery = "Out for Delivery"
	StepDelivered      = "Delivered"
)

// StepNames secuencia fija de pasos de seguimiento
var StepNames = []string{
	StepOrderPlaced,
	StepProcessing,
	StepShipped,
	StepOutForDelivery,
	StepDelivered,
}

// TrackingStep un hito del seguimiento de la orden
type TrackingStep struct {
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Tracking estado de seguimiento y sus pasos
type Tracking struct {
	Status OrderStatus    `json:"status"`
	Steps  []TrackingStep `json:"steps"`
}

// NewTracking crea el seguimiento inicial: solo "Order Placed" completado
func NewTracking(now time.Time) Tracking {
	steps := make([]TrackingStep, len(StepNames))
	for i, name := range StepNames {
		steps[i] = TrackingStep{Name: name}
	}
	placedAt := now
	steps[0].Completed = true
	steps[0].CompletedAt = &placedAt

	return Tracking{
		Status: OrderStatusProcessing,
		Steps:  steps,
	}
}

// Clone copia profunda del seguimiento
func (t Tracking) Clone() Tracking {
	steps := make([]TrackingStep, len(t.Steps))
	for i, s := range t.Steps {
		steps[i] = s
		if s.CompletedAt != nil {
			at := *s.CompletedAt
			steps[i].CompletedAt = &at
		}
	}
	return Tracking{Status: t.Status, Steps: steps}
}

// Step busca un paso por nombre
func (t Tracking) Step(name string) (TrackingStep, bool) {
	for _, s := range t.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return TrackingStep{}, false
}

// CompleteStep marca como completado el paso con ese nombre.
// Con cascade también completa los pasos anteriores pendientes.
// Un paso ya completado conserva su CompletedAt.
// Retorna false si no existe un paso con ese nombre.
func (t *Tracking) CompleteStep(name string, now time.Time, cascade bool) bool {
	idx := -1
	for i := range t.Steps {
		if t.Steps[i].Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	from := idx
	if cascade {
		from = 0
	}
	for i := from; i <= idx; i++ {
		if t.Steps[i].Completed {
			continue
		}
		at := now
		t.Steps[i].Completed = true
		t.Steps[i].CompletedAt = &at
	}
	return true
}
