package model

import "errors"

// Error kinds surfaced by the persistence and workflow layers. Callers
// classify failures with errors.Is; anything not matching one of these is
// a storage or driver fault.
var (
	// ErrNotFound is returned when a requested entity doesn't exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an operation would violate a
	// relationship, such as deleting a category that products reference.
	ErrConflict = errors.New("conflict")
	// ErrValidation is returned for input the workflows refuse to persist.
	ErrValidation = errors.New("validation failed")
)
