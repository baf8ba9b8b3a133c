package errors

import "errors"

var (
	ErrInvalidRequest = errors.New("cart-service: invalid request")
	ErrDuplicateItem  = errors.New("cart-service: listing already in cart for those dates")
	ErrItemNotFound   = errors.New("cart-service: cart item not found")
)
