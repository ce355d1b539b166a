package medicalrecord

import (
	"context"
	"sync"
	"time"
)

// MemRepo is an in-memory Repository. Insertion order is preserved for
// listing, and IDs are never reused after a delete.
type MemRepo struct {
	mu     sync.RWMutex
	byID   map[int]*MedicalRecord
	ids    []int
	nextID int
}

func NewMemRepo() *MemRepo {
	return &MemRepo{
		byID:   make(map[int]*MedicalRecord),
		nextID: 1,
	}
}

func (r *MemRepo) Create(_ context.Context, rec *MedicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = r.nextID
	r.nextID++
	if rec.Date.IsZero() {
		rec.Date = time.Now().UTC()
	}

	stored := *rec
	r.byID[rec.ID] = &stored
	r.ids = append(r.ids, rec.ID)
	return nil
}

func (r *MemRepo) GetByID(_ context.Context, id int) (*MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (r *MemRepo) ListByPatient(_ context.Context, patientID int) ([]*MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*MedicalRecord, 0)
	for _, id := range r.ids {
		if rec := r.byID[id]; rec != nil && rec.PatientID == patientID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *MemRepo) Update(_ context.Context, id int, patch *Patch) (*MedicalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.PatientID != nil {
		rec.PatientID = *patch.PatientID
	}
	if patch.StaffID != nil {
		rec.StaffID = *patch.StaffID
	}
	if patch.Date != nil {
		rec.Date = *patch.Date
	}
	if patch.Diagnosis != nil {
		rec.Diagnosis = patch.Diagnosis
	}
	if patch.Treatment != nil {
		rec.Treatment = patch.Treatment
	}
	if patch.Prescription != nil {
		rec.Prescription = patch.Prescription
	}
	if patch.Notes != nil {
		rec.Notes = patch.Notes
	}
	if patch.FollowUpDate != nil {
		rec.FollowUpDate = patch.FollowUpDate
	}

	out := *rec
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
