package staff

import "errors"

var (
	// ErrNotFound is returned when no staff member exists for the given
	// ID or username.
	ErrNotFound = errors.New("staff member not found")

	// ErrUsernameExists is returned when a create or update would
	// duplicate a username.
	ErrUsernameExists = errors.New("username already in use")

	// ErrInvalidRole is returned when a role is not one of the
	// recognized staff roles.
	ErrInvalidRole = errors.New("invalid staff role")
)
