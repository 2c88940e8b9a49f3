package request

// CancellationRequest motivo y comentario de una cancelación
type CancellationRequest struct {
	Reason  string `json:"reason"`
	Comment string `json:"comment,omitempty"`
}

// UpdateStatusRequest representa la petición de cambio de estado
type UpdateStatusRequest struct {
	Status       string               `json:"status" binding:"required"`
	Cancellation *CancellationRequest `json:"cancellation,omitempty"`
}

// CancelOrderRequest representa la petición de cancelación del cliente
type CancelOrderRequest struct {
	Reason  string `json:"reason"`
	Comment string `json:"comment,omitempty"`
}
