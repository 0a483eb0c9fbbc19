package service

import "errors"

var (
	// ErrValidation marks a mutation whose input misses required
	// fields. Raised before any I/O, so no state changed.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an operation referencing an unknown recipe id.
	ErrNotFound = errors.New("recipe not found")

	// ErrPersistence marks a storage write that failed. The in-memory
	// mirror is left unchanged and the caller may retry.
	ErrPersistence = errors.New("persistence failed")

	// ErrInvalidCredentials marks a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
