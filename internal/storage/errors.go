package storage

import "errors"

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrSaleNotFound      = errors.New("sale not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrClientNotFound    = errors.New("client not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateLogin    = errors.New("login already taken")
	ErrInsufficientStock = errors.New("insufficient stock")
)
