package utils

import "errors"

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrNotFound           = errors.New("record not found")
	ErrValidation         = errors.New("invalid input")
	ErrConflict           = errors.New("duplicate record")
	ErrInvalidState       = errors.New("operation not allowed in current state")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDatabaseError      = errors.New("database error")
)
