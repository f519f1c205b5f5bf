package services

import "errors"

// Failure classes surfaced by the services. Handlers map these to HTTP
// statuses; anything not matching is treated as a persistence failure.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient permissions")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrPostLocked      = errors.New("post is locked")
	ErrConflict        = errors.New("state conflict")
)
