package medicalrecord

import "context"

// Repository is the medical record storage contract.
type Repository interface {
	Create(ctx context.Context, rec *MedicalRecord) error
	GetByID(ctx context.Context, id int) (*MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID int) ([]*MedicalRecord, error)
	Update(ctx context.Context, id int, patch *Patch) (*MedicalRecord, error)
	Delete(ctx context.Context, id int) error
}
