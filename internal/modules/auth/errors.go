package auth

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("user not found")
)
