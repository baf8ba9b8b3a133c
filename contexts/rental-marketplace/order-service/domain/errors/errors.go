package errors

import "errors"

var (
	ErrInvalidRequest  = errors.New("order-service: invalid request")
	ErrEmptyCart       = errors.New("order-service: cart is empty")
	ErrPaymentDeclined = errors.New("order-service: payment declined")
	ErrOrderNotFound   = errors.New("order-service: order not found")
)
