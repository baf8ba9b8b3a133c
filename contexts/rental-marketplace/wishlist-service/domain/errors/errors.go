package errors

import "errors"

var ErrInvalidRequest = errors.New("wishlist-service: invalid request")
