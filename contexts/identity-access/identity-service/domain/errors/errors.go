package errors

import "errors"

var (
	ErrInvalidRequest   = errors.New("identity-service: invalid request")
	ErrNotAuthenticated = errors.New("identity-service: no user signed in")
)
