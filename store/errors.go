package store

import "errors"

var (
	// ErrDuplicateName is returned when an insert collides with an
	// existing country name.
	ErrDuplicateName = errors.New("country name already exists")
	// ErrStoreUnavailable is returned when the store cannot be reached
	// or the operation cannot be committed.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("country not found")
)
