package services

import "errors"

// Sentinel errors mapped to HTTP responses by the handlers.
var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrValidationFailed   = errors.New("validation failed")
	ErrStoreUnavailable   = errors.New("store unavailable")
)
