package appointment

import (
	"context"
	"time"
)

// Repository is the appointment storage contract.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int) (*Appointment, error)
	List(ctx context.Context) ([]*Appointment, error)
	ListByDate(ctx context.Context, date time.Time) ([]*Appointment, error)
	ListByPatient(ctx context.Context, patientID int) ([]*Appointment, error)
	ListByStaff(ctx context.Context, staffID int) ([]*Appointment, error)
	Update(ctx context.Context, id int, patch *Patch) (*Appointment, error)
	Delete(ctx context.Context, id int) error
}
