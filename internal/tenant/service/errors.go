package service

import "errors"

// Shared sentinels. Operation-specific errors live next to the operation.
var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("operation not permitted for this role")
	ErrSelfAction      = errors.New("operation cannot target the acting user")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidRole     = errors.New("invalid role")
	ErrNotFound        = errors.New("not found")
)
