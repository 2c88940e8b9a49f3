package failure

import (
	"errors"
	"fmt"
)

// Kind clasifica un fallo según su origen
type Kind int

const (
	// Precondition: validación del lado cliente, no se intentó ninguna llamada
	Precondition Kind = iota
	// Network: la petición no pudo enviarse o no hubo respuesta
	Network
	// Rejected: el backend respondió con un status no exitoso
	Rejected
)

func (k Kind) String() string {
	switch k {
	case Precondition:
		return "PRECONDITION_FAILURE"
	case Network:
		return "NETWORK_FAILURE"
	case Rejected:
		return "REJECTED_BY_SERVER"
	default:
		return "UNKNOWN"
	}
}

// Failure es el error que devuelven los casos de uso y los clientes REST
type Failure struct {
	Kind       Kind
	Op         string
	StatusCode int    // solo para Rejected
	Message    string // mensaje del servidor si lo hubo
	Err        error
}

func (f *Failure) Error() string {
	switch f.Kind {
	case Rejected:
		if f.Message != "" {
			return fmt.Sprintf("%s: rejected by server (status %d): %s", f.Op, f.StatusCode, f.Message)
		}
		return fmt.Sprintf("%s: rejected by server (status %d)", f.Op, f.StatusCode)
	case Network:
		return fmt.Sprintf("%s: network failure: %v", f.Op, f.Err)
	default:
		return fmt.Sprintf("%s: %v", f.Op, f.Err)
	}
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// NewPrecondition envuelve un error de validación local
func NewPrecondition(op string, err error) *Failure {
	return &Failure{Kind: Precondition, Op: op, Err: err}
}

// NewNetwork envuelve un error de transporte
func NewNetwork(op string, err error) *Failure {
	return &Failure{Kind: Network, Op: op, Err: err}
}

// NewRejected construye un fallo a partir de una respuesta no exitosa
func NewRejected(op string, statusCode int, message string) *Failure {
	return &Failure{
		Kind:       Rejected,
		Op:         op,
		StatusCode: statusCode,
		Message:    message,
		Err:        ErrRejected,
	}
}

// ErrRejected es la causa de todo fallo de tipo Rejected
var ErrRejected = errors.New("request rejected by server")

// KindOf devuelve el Kind de err y si err contiene un *Failure
func KindOf(err error) (Kind, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind, true
	}
	return 0, false
}

// IsPrecondition indica si err es un fallo de precondición
func IsPrecondition(err error) bool {
	k, ok := KindOf(err)
	return ok && k == Precondition
}

// IsNetwork indica si err es un fallo de red
func IsNetwork(err error) bool {
	k, ok := KindOf(err)
	return ok && k == Network
}

// IsRejected indica si err es un rechazo del servidor
func IsRejected(err error) bool {
	k, ok := KindOf(err)
	return ok && k == Rejected
}
