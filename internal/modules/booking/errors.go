package booking

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrServiceNotFound = errors.New("service not found")
	ErrNotFound        = errors.New("booking not found")
	ErrNotCancellable  = errors.New("booking cannot be cancelled")
)
