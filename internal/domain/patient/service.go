package patient

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

func (s *Service) Register(ctx context.Context, p *Patient) error {
	if p.MedicalRecordNumber == "" {
		return fmt.Errorf("medicalRecordNumber is required")
	}
	if p.FirstName == "" {
		return fmt.Errorf("firstName is required")
	}
	if p.LastName == "" {
		return fmt.Errorf("lastName is required")
	}
	if p.DateOfBirth.IsZero() {
		return fmt.Errorf("dateOfBirth is required")
	}
	if p.Gender == "" {
		return fmt.Errorf("gender is required")
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByMRN(ctx context.Context, mrn string) (*Patient, error) {
	return s.repo.GetByMRN(ctx, mrn)
}

func (s *Service) Search(ctx context.Context, query string) ([]*Patient, error) {
	return s.repo.Search(ctx, query)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]*Patient, error) {
	return s.repo.ListRecent(ctx, limit)
}

func (s *Service) Update(ctx context.Context, id int, patch *Patch) (*Patient, error) {
	if patch.MedicalRecordNumber != nil && *patch.MedicalRecordNumber == "" {
		return nil, fmt.Errorf("medicalRecordNumber cannot be empty")
	}
	if patch.FirstName != nil && *patch.FirstName == "" {
		return nil, fmt.Errorf("firstName cannot be empty")
	}
	if patch.LastName != nil && *patch.LastName == "" {
		return nil, fmt.Errorf("lastName cannot be empty")
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
