package store

import "errors"

var (
	// ErrNotFound is returned when no document matches the id or filter
	ErrNotFound = errors.New("document not found")

	// ErrInvalidID is returned when an id is not a 24-character hex string
	ErrInvalidID = errors.New("invalid document id")

	// ErrDuplicate is returned when a write violates a unique index
	ErrDuplicate = errors.New("duplicate document")
)
