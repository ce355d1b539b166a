package medicalrecord

import "errors"

// ErrNotFound is returned when no medical record exists for the given ID.
var ErrNotFound = errors.New("medical record not found")
