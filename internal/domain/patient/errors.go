package patient

import "errors"

var (
	// ErrNotFound is returned when no patient exists for the given ID or MRN.
	ErrNotFound = errors.New("patient not found")

	// ErrMRNExists is returned when a create or update would duplicate a
	// medical record number.
	ErrMRNExists = errors.New("medical record number already in use")
)
