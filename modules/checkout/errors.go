package checkout

import "errors"

var (
	ErrBillingRequired      = errors.New("billing information is required")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrCartUnavailable      = errors.New("cart is unavailable")
)
