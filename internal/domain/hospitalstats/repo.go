package hospitalstats

import (
	"context"
	"time"
)

// Repository is the hospital stats storage contract. Rows are keyed by
// calendar day.
type Repository interface {
	Create(ctx context.Context, st *Stats) error
	GetByDate(ctx context.Context, date time.Time) (*Stats, error)
	Latest(ctx context.Context) (*Stats, error)
	Update(ctx context.Context, date time.Time, patch *Patch) (*Stats, error)
}
