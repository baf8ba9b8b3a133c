package errors

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid listing request")
	ErrListingNotFound = errors.New("listing not found")
)
