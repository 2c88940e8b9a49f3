package entity

import (
	"strings"
	"time"
)

// CancellationReason motivo de cancelación
type CancellationReason string

// Motivos ofrecidos al cliente
const (
	ReasonChangedMind      CancellationReason = "Changed my mind"
	ReasonBetterPrice      CancellationReason = "Found a better price elsewhere"
	ReasonDeliveryTooLong  CancellationReason = "Delivery time too long"
	ReasonSpecsNotMatching CancellationReason = "Product specifications not matching"
	ReasonFinancial        CancellationReason = "Financial reasons"
)

// Motivos ofrecidos al administrador
const (
	ReasonOutOfStock      CancellationReason = "Out of Stock"
	ReasonCustomerRequest CancellationReason = "Customer Request"
	ReasonDeliveryIssues  CancellationReason = "Delivery Issues"
	ReasonPaymentIssues   CancellationReason = "Payment Issues"
	ReasonOther           CancellationReason = "Other"
)

var cancellationReasons = []CancellationReason{
	ReasonChangedMind,
	ReasonBetterPrice,
	ReasonDeliveryTooLong,
	ReasonSpecsNotMatching,
	ReasonFinancial,
	ReasonOutOfStock,
	ReasonCustomerRequest,
	ReasonDeliveryIssues,
	ReasonPaymentIssues,
	ReasonOther,
}

// CancellationReasons lista de motivos válidos
func CancellationReasons() []CancellationReason {
	out := make([]CancellationReason, len(cancellationReasons))
	copy(out, cancellationReasons)
	return out
}

// IsValid indica si el motivo pertenece a la lista
func (r CancellationReason) IsValid() bool {
	for _, known := range cancellationReasons {
		if r == known {
			return true
		}
	}
	return false
}

// CancellationRequest datos que aporta quien cancela
type CancellationRequest struct {
	Reason  CancellationReason `json:"reason"`
	Comment string             `json:"comment,omitempty"`
}

// Validate exige un motivo conocido
func (r *CancellationRequest) Validate() error {
	if r == nil || strings.TrimSpace(string(r.Reason)) == "" {
		return ErrCancellationReasonRequired
	}
	if !r.Reason.IsValid() {
		return ErrInvalidCancellationReason
	}
	return nil
}

// CancellationInfo presente solo cuando la orden está cancelada
type CancellationInfo struct {
	Reason      CancellationReason `json:"reason"`
	Comment     string             `json:"comment,omitempty"`
	CancelledAt time.Time          `json:"cancelled_at"`
}
