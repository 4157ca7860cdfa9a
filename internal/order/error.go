package order

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyOrder = errors.New("order must contain at least one item")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")

	// -- External --
	ErrPaymentGateway = errors.New("payment provider error")
)
