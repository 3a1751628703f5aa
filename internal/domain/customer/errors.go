package customer

import "errors"

var (
	ErrMissingField = errors.New("required field is missing")
	ErrNotFound     = errors.New("customer not found")
)
