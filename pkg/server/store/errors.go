package store

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a write collides with a uniqueness
	// constraint (duplicate email, duplicate tag name).
	ErrConflict = errors.New("record already exists")
)
