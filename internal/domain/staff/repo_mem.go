package staff

import (
	"context"
	"sync"
)

// MemRepo is an in-memory Repository. Insertion order is preserved for
// listing, and IDs are never reused after a delete.
type MemRepo struct {
	mu     sync.RWMutex
	byID   map[int]*Staff
	ids    []int
	nextID int
}

func NewMemRepo() *MemRepo {
	return &MemRepo{
		byID:   make(map[int]*Staff),
		nextID: 1,
	}
}

func (r *MemRepo) Create(_ context.Context, s *Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Username == s.Username {
			return ErrUsernameExists
		}
	}

	s.ID = r.nextID
	r.nextID++

	stored := *s
	r.byID[s.ID] = &stored
	r.ids = append(r.ids, s.ID)
	return nil
}

func (r *MemRepo) GetByID(_ context.Context, id int) (*Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *s
	return &out, nil
}

func (r *MemRepo) GetByUsername(_ context.Context, username string) (*Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.ids {
		if s := r.byID[id]; s != nil && s.Username == username {
			out := *s
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) List(_ context.Context) ([]*Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Staff, 0, len(r.ids))
	for _, id := range r.ids {
		if s := r.byID[id]; s != nil {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ListDoctors filters on an exact role match.
func (r *MemRepo) ListDoctors(_ context.Context) ([]*Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Staff, 0)
	for _, id := range r.ids {
		if s := r.byID[id]; s != nil && s.Role == RoleDoctor {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *MemRepo) Update(_ context.Context, id int, patch *Patch) (*Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.Username != nil && *patch.Username != s.Username {
		for _, existing := range r.byID {
			if existing.ID != id && existing.Username == *patch.Username {
				return nil, ErrUsernameExists
			}
		}
		s.Username = *patch.Username
	}
	if patch.FirstName != nil {
		s.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		s.LastName = *patch.LastName
	}
	if patch.Role != nil {
		s.Role = *patch.Role
	}
	if patch.Specialization != nil {
		s.Specialization = patch.Specialization
	}
	if patch.PhoneNumber != nil {
		s.PhoneNumber = patch.PhoneNumber
	}
	if patch.Email != nil {
		s.Email = patch.Email
	}
	if patch.Password != nil {
		s.Password = *patch.Password
	}

	out := *s
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
