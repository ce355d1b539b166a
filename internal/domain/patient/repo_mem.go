package patient

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemRepo is an in-memory Repository. Insertion order is preserved for
// listing, and IDs are never reused after a delete.
type MemRepo struct {
	mu     sync.RWMutex
	byID   map[int]*Patient
	ids    []int
	nextID int
}

func NewMemRepo() *MemRepo {
	return &MemRepo{
		byID:   make(map[int]*Patient),
		nextID: 1,
	}
}

func (r *MemRepo) Create(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.MedicalRecordNumber == p.MedicalRecordNumber {
			return ErrMRNExists
		}
	}

	p.ID = r.nextID
	r.nextID++
	if p.RegistrationDate.IsZero() {
		p.RegistrationDate = time.Now().UTC()
	}

	stored := *p
	r.byID[p.ID] = &stored
	r.ids = append(r.ids, p.ID)
	return nil
}

func (r *MemRepo) GetByID(_ context.Context, id int) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *p
	return &out, nil
}

func (r *MemRepo) GetByMRN(_ context.Context, mrn string) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.ids {
		if p := r.byID[id]; p != nil && p.MedicalRecordNumber == mrn {
			out := *p
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) List(_ context.Context) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(), nil
}

// Search matches a case-insensitive substring against first name, last
// name, MRN, and email when present. An empty query returns everything.
func (r *MemRepo) Search(_ context.Context, query string) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if query == "" {
		return r.snapshot(), nil
	}

	q := strings.ToLower(query)
	out := make([]*Patient, 0)
	for _, id := range r.ids {
		p := r.byID[id]
		if p == nil {
			continue
		}
		if strings.Contains(strings.ToLower(p.FirstName), q) ||
			strings.Contains(strings.ToLower(p.LastName), q) ||
			strings.Contains(strings.ToLower(p.MedicalRecordNumber), q) ||
			(p.Email != nil && strings.Contains(strings.ToLower(*p.Email), q)) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ListRecent returns up to limit patients ordered by registration date,
// newest first.
func (r *MemRepo) ListRecent(_ context.Context, limit int) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.snapshot()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].RegistrationDate.After(all[j].RegistrationDate)
	})
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *MemRepo) Update(_ context.Context, id int, patch *Patch) (*Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.MedicalRecordNumber != nil && *patch.MedicalRecordNumber != p.MedicalRecordNumber {
		for _, existing := range r.byID {
			if existing.ID != id && existing.MedicalRecordNumber == *patch.MedicalRecordNumber {
				return nil, ErrMRNExists
			}
		}
		p.MedicalRecordNumber = *patch.MedicalRecordNumber
	}
	if patch.FirstName != nil {
		p.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		p.LastName = *patch.LastName
	}
	if patch.DateOfBirth != nil {
		p.DateOfBirth = *patch.DateOfBirth
	}
	if patch.Gender != nil {
		p.Gender = *patch.Gender
	}
	if patch.PhoneNumber != nil {
		p.PhoneNumber = patch.PhoneNumber
	}
	if patch.Email != nil {
		p.Email = patch.Email
	}
	if patch.Address != nil {
		p.Address = patch.Address
	}
	if patch.EmergencyContact != nil {
		p.EmergencyContact = patch.EmergencyContact
	}
	if patch.EmergencyPhone != nil {
		p.EmergencyPhone = patch.EmergencyPhone
	}
	if patch.BloodType != nil {
		p.BloodType = patch.BloodType
	}

	out := *p
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

// snapshot copies all patients in insertion order. Callers must hold the
// read lock.
func (r *MemRepo) snapshot() []*Patient {
	out := make([]*Patient, 0, len(r.ids))
	for _, id := range r.ids {
		if p := r.byID[id]; p != nil {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out
}
