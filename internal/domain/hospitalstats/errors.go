package hospitalstats

import "errors"

var (
	// ErrNotFound is returned when no stats row exists for the given date.
	ErrNotFound = errors.New("hospital stats not found")

	// ErrStatsExist is returned when a create would duplicate a date.
	ErrStatsExist = errors.New("hospital stats already recorded for date")
)
