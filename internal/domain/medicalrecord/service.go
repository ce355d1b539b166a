package medicalrecord

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

func (s *Service) Create(ctx context.Context, rec *MedicalRecord) error {
	if rec.PatientID == 0 {
		return fmt.Errorf("patientId is required")
	}
	if rec.StaffID == 0 {
		return fmt.Errorf("staffId is required")
	}
	return s.repo.Create(ctx, rec)
}

func (s *Service) Get(ctx context.Context, id int) (*MedicalRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int) ([]*MedicalRecord, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) Update(ctx context.Context, id int, patch *Patch) (*MedicalRecord, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
