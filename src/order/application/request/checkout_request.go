package request

// CheckoutRequest datos del formulario de pago.
// La validación se hace en el caso de uso para distinguir cada precondición.
type CheckoutRequest struct {
	PaymentMethod   string `json:"payment_method"`
	ShippingAddress string `json:"shipping_address"`
}
