package entity

import "errors"

var (
	ErrEmptyCart                  = errors.New("cart must have at least one item")
	ErrNotAuthenticated           = errors.New("login required")
	ErrPaymentMethodRequired      = errors.New("payment_method is required")
	ErrUnsupportedPaymentMethod   = errors.New("payment_method is not supported")
	ErrOrderIDRequired            = errors.New("order_id is required")
	ErrOrderNotFound              = errors.New("order not found")
	ErrStatusRequired             = errors.New("status is required")
	ErrOrderTerminal              = errors.New("order is in a terminal state")
	ErrInvalidTransition          = errors.New("status transition not allowed")
	ErrCancellationReasonRequired = errors.New("cancellation reason is required")
	ErrInvalidCancellationReason  = errors.New("cancellation reason is not valid")
	ErrActionInFlight             = errors.New("another request for this action is in progress")
)
