package store

import "errors"

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateISBN is returned when an insert or update would leave
	// two records with the same ISBN.
	ErrDuplicateISBN = errors.New("a book with this ISBN already exists")
)
