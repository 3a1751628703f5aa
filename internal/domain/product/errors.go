package product

import "errors"

var (
	ErrMissingField      = errors.New("required field is missing")
	ErrInvalidPrice      = errors.New("price must not be negative")
	ErrInvalidStock      = errors.New("stock quantity must not be negative")
	ErrInvalidDiscount   = errors.New("discount percentage must be between 0 and 100")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrAlreadyExists     = errors.New("product already exists")
	ErrNotFound          = errors.New("product not found")
)
