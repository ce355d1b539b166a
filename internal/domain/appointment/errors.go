package appointment

import "errors"

var (
	// ErrNotFound is returned when no appointment exists for the given ID.
	ErrNotFound = errors.New("appointment not found")

	// ErrInvalidStatus is returned when a status is not one of the
	// recognized appointment statuses.
	ErrInvalidStatus = errors.New("invalid appointment status")
)
