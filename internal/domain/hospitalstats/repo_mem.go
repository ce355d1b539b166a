package hospitalstats

import (
	"context"
	"sync"
	"time"
)

// MemRepo is an in-memory Repository keyed by UTC calendar day.
type MemRepo struct {
	mu     sync.RWMutex
	byDate map[string]*Stats
	nextID int
}

func NewMemRepo() *MemRepo {
	return &MemRepo{
		byDate: make(map[string]*Stats),
		nextID: 1,
	}
}

func (r *MemRepo) Create(_ context.Context, st *Stats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := DateKey(st.Date)
	if _, exists := r.byDate[key]; exists {
		return ErrStatsExist
	}

	st.ID = r.nextID
	r.nextID++

	stored := *st
	r.byDate[key] = &stored
	return nil
}

func (r *MemRepo) GetByDate(_ context.Context, date time.Time) (*Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.byDate[DateKey(date)]
	if !ok {
		return nil, ErrNotFound
	}
	out := *st
	return &out, nil
}

// Latest returns the row with the most recent date.
func (r *MemRepo) Latest(_ context.Context) (*Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *Stats
	var latestKey string
	for key, st := range r.byDate {
		if latest == nil || key > latestKey {
			latest, latestKey = st, key
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	out := *latest
	return &out, nil
}

func (r *MemRepo) Update(_ context.Context, date time.Time, patch *Patch) (*Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.byDate[DateKey(date)]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.TotalBeds != nil {
		st.TotalBeds = *patch.TotalBeds
	}
	if patch.OccupiedBeds != nil {
		st.OccupiedBeds = *patch.OccupiedBeds
	}
	if patch.AvgStayDuration != nil {
		st.AvgStayDuration = *patch.AvgStayDuration
	}
	if patch.EmergencyVisits != nil {
		st.EmergencyVisits = *patch.EmergencyVisits
	}
	if patch.ScheduledSurgeries != nil {
		st.ScheduledSurgeries = *patch.ScheduledSurgeries
	}

	out := *st
	return &out, nil
}
