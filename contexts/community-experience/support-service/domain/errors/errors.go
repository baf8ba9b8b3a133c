package errors

import "errors"

var (
	ErrInvalidRequest  = errors.New("support-service: invalid request")
	ErrMessageNotFound = errors.New("support-service: message not found")
)
