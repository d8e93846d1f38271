package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrProductNotFound    = errors.New("product not found")
	ErrCartNotFound       = errors.New("cart not found")
	ErrItemNotFound       = errors.New("product not in cart")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
)
