package staff

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, m *Staff) error {
	if m.FirstName == "" {
		return fmt.Errorf("firstName is required")
	}
	if m.LastName == "" {
		return fmt.Errorf("lastName is required")
	}
	if m.Username == "" {
		return fmt.Errorf("username is required")
	}
	if m.Password == "" {
		return fmt.Errorf("password is required")
	}
	if !ValidRole(m.Role) {
		return fmt.Errorf("%w: %s", ErrInvalidRole, m.Role)
	}
	return s.repo.Create(ctx, m)
}

func (s *Service) Get(ctx context.Context, id int) (*Staff, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*Staff, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) List(ctx context.Context) ([]*Staff, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListDoctors(ctx context.Context) ([]*Staff, error) {
	return s.repo.ListDoctors(ctx)
}

func (s *Service) Update(ctx context.Context, id int, patch *Patch) (*Staff, error) {
	if patch.Role != nil && !ValidRole(*patch.Role) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, *patch.Role)
	}
	if patch.Username != nil && *patch.Username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}
	if patch.Password != nil && *patch.Password == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
