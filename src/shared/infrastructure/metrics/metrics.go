package metrics

import (
	"github.com/Korikanas/ncart/src/shared/domain/failure"

	"github.com/prometheus/client_golang/prometheus"
)

// Resultados de las acciones de órdenes
const (
	ResultSuccess      = "success"
	ResultPrecondition = "precondition_failure"
	ResultNetwork      = "network_failure"
	ResultRejected     = "rejected_by_server"
)

// ResultOf clasifica el error de una acción para las etiquetas
func ResultOf(err error) string {
	if err == nil {
		return ResultSuccess
	}
	kind, _ := failure.KindOf(err)
	switch kind {
	case failure.Network:
		return ResultNetwork
	case failure.Rejected:
		return ResultRejected
	default:
		return ResultPrecondition
	}
}

// Metrics contadores del servicio
type Metrics struct {
	checkouts       *prometheus.CounterVec
	transitions     *prometheus.CounterVec
	backendRequests *prometheus.CounterVec
}

// New crea y registra los contadores en el registerer dado.
// Con nil no se registran (tests).
func New(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ncart",
			Name:      "checkouts_total",
			Help:      "Checkout attempts by result.",
		}, []string{"result"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ncart",
			Name:      "order_transitions_total",
			Help:      "Order status transitions by target status and result.",
		}, []string{"status", "result"}),
		backendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ncart",
			Name:      "backend_requests_total",
			Help:      "Calls to the REST backend by operation and outcome.",
		}, []string{"operation", "outcome"}),
	}

	if registerer != nil {
		registerer.MustRegister(m.checkouts, m.transitions, m.backendRequests)
	}
	return m
}

// ObserveCheckout registra un intento de checkout
func (m *Metrics) ObserveCheckout(result string) {
	if m == nil {
		return
	}
	m.checkouts.WithLabelValues(result).Inc()
}

// ObserveTransition registra un intento de cambio de estado
func (m *Metrics) ObserveTransition(status, result string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(status, result).Inc()
}

// ObserveBackendRequest implementa client.RequestObserver
func (m *Metrics) ObserveBackendRequest(op, outcome string) {
	if m == nil {
		return
	}
	m.backendRequests.WithLabelValues(op, outcome).Inc()
}
