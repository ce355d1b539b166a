package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mediboard/mediboard/internal/domain/patient"
	"github.com/mediboard/mediboard/internal/domain/staff"
)

type Service struct {
	repo     Repository
	patients patient.Repository
	staff    staff.Repository
	log      zerolog.Logger
}

func NewService(repo Repository, patients patient.Repository, staffRepo staff.Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, patients: patients, staff: staffRepo, log: log}
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.PatientID == 0 {
		return fmt.Errorf("patientId is required")
	}
	if a.StaffID == 0 {
		return fmt.Errorf("staffId is required")
	}
	if a.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if a.Time.IsZero() {
		return fmt.Errorf("time is required")
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if !ValidStatus(a.Status) {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, a.Status)
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id int) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByDate(ctx context.Context, date time.Time) ([]*Appointment, error) {
	return s.repo.ListByDate(ctx, date)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int) ([]*Appointment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListByStaff(ctx context.Context, staffID int) ([]*Appointment, error) {
	return s.repo.ListByStaff(ctx, staffID)
}

func (s *Service) Update(ctx context.Context, id int, patch *Patch) (*Appointment, error) {
	if patch.Status != nil && !ValidStatus(*patch.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *patch.Status)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// TodayAppointments resolves today's appointments into dashboard rows,
// joining each appointment with its patient and doctor. Appointments
// whose patient or staff reference no longer resolves are logged and
// excluded; the second return value is the number of excluded rows.
func (s *Service) TodayAppointments(ctx context.Context) ([]*PatientRow, int, error) {
	return s.appointmentsFor(ctx, time.Now().UTC())
}

func (s *Service) appointmentsFor(ctx context.Context, day time.Time) ([]*PatientRow, int, error) {
	appts, err := s.repo.ListByDate(ctx, day)
	if err != nil {
		return nil, 0, err
	}

	results := make([]*PatientRow, len(appts))
	g, ctx := errgroup.WithContext(ctx)
	for i, appt := range appts {
		i, appt := i, appt
		g.Go(func() error {
			row, err := s.resolve(ctx, appt)
			if err != nil {
				return err
			}
			results[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	rows := make([]*PatientRow, 0, len(results))
	for _, row := range results {
		if row != nil {
			rows = append(rows, row)
		}
	}
	return rows, len(appts) - len(rows), nil
}

// resolve joins one appointment with its patient and doctor. A nil row
// with a nil error means the appointment was excluded for a dangling
// reference.
func (s *Service) resolve(ctx context.Context, appt *Appointment) (*PatientRow, error) {
	p, err := s.patients.GetByID(ctx, appt.PatientID)
	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			s.log.Warn().
				Int("appointment_id", appt.ID).
				Int("patient_id", appt.PatientID).
				Msg("excluding appointment with missing patient")
			return nil, nil
		}
		return nil, err
	}

	d, err := s.staff.GetByID(ctx, appt.StaffID)
	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			s.log.Warn().
				Int("appointment_id", appt.ID).
				Int("staff_id", appt.StaffID).
				Msg("excluding appointment with missing staff member")
			return nil, nil
		}
		return nil, err
	}

	specialization := ""
	if d.Specialization != nil {
		specialization = *d.Specialization
	}

	return &PatientRow{
		Patient:         *p,
		AppointmentTime: appt.Time.Format("15:04"),
		AppointmentDate: DateKey(appt.Date),
		DoctorName:      d.FirstName + " " + d.LastName,
		Specialization:  specialization,
		Status:          appt.Status,
	}, nil
}
