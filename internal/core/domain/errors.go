package domain

import "errors"

// Sentinel errors for the account domain. Each carries a fixed, client-safe
// message; the API error handler maps them to HTTP status codes.
var (
	ErrUserExists         = errors.New("a user with this email or phone number already exists")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access denied")
	ErrUnexpectedState    = errors.New("an unexpected error occurred while performing the operation")
)
