package appointment

import (
	"context"
	"sync"
	"time"
)

// MemRepo is an in-memory Repository. Insertion order is preserved for
// listing, and IDs are never reused after a delete.
type MemRepo struct {
	mu     sync.RWMutex
	byID   map[int]*Appointment
	ids    []int
	nextID int
}

func NewMemRepo() *MemRepo {
	return &MemRepo{
		byID:   make(map[int]*Appointment),
		nextID: 1,
	}
}

func (r *MemRepo) Create(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	r.nextID++

	stored := *a
	r.byID[a.ID] = &stored
	r.ids = append(r.ids, a.ID)
	return nil
}

func (r *MemRepo) GetByID(_ context.Context, id int) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *a
	return &out, nil
}

func (r *MemRepo) List(_ context.Context) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(*Appointment) bool { return true }), nil
}

// ListByDate compares calendar days: both sides are normalized to their
// UTC date before matching.
func (r *MemRepo) ListByDate(_ context.Context, date time.Time) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := DateKey(date)
	return r.filter(func(a *Appointment) bool {
		return DateKey(a.Date) == key
	}), nil
}

func (r *MemRepo) ListByPatient(_ context.Context, patientID int) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(a *Appointment) bool {
		return a.PatientID == patientID
	}), nil
}

func (r *MemRepo) ListByStaff(_ context.Context, staffID int) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(a *Appointment) bool {
		return a.StaffID == staffID
	}), nil
}

func (r *MemRepo) Update(_ context.Context, id int, patch *Patch) (*Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.PatientID != nil {
		a.PatientID = *patch.PatientID
	}
	if patch.StaffID != nil {
		a.StaffID = *patch.StaffID
	}
	if patch.Date != nil {
		a.Date = *patch.Date
	}
	if patch.Time != nil {
		a.Time = *patch.Time
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.Reason != nil {
		a.Reason = patch.Reason
	}
	if patch.Notes != nil {
		a.Notes = patch.Notes
	}

	out := *a
	return &out, nil
}

func (r *MemRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.ids {
		if v == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}

// filter copies matching appointments in insertion order. Callers must
// hold the read lock.
func (r *MemRepo) filter(keep func(*Appointment) bool) []*Appointment {
	out := make([]*Appointment, 0)
	for _, id := range r.ids {
		if a := r.byID[id]; a != nil && keep(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out
}
