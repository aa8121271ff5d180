package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidID is returned when a record ID is malformed: empty,
	// non-numeric, zero or negative.
	ErrInvalidID = errors.New("invalid ID")

	// ErrIDTooLarge is returned when a record ID is numeric but exceeds
	// the range of an int64.
	ErrIDTooLarge = errors.New("ID too large")
)
