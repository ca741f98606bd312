package store

import "errors"

var (
	// ErrNotFound is returned when a record does not exist in its collection.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a unique field collides with an existing record.
	ErrConflict = errors.New("record conflicts with an existing record")
)
