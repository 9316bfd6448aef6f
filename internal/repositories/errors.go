package repositories

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique key (post source id, favorite) already exists.
	ErrDuplicate = errors.New("duplicate")
)
