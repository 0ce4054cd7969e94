package service

import "errors"

var (
	ErrNameRequired       = errors.New("name is required")
	ErrInvalidPrice       = errors.New("unit price must be positive")
	ErrNegativeStock      = errors.New("stock cannot be negative")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrOrderNotPending    = errors.New("order is not pending")
	ErrLoginRequired      = errors.New("login and password are required")
	ErrInvalidCredentials = errors.New("invalid login or password")
)
