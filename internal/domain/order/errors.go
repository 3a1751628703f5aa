package order

import "errors"

var (
	ErrMissingField    = errors.New("required field is missing")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrNotFound        = errors.New("order not found")
)
