package sandbox

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mediboard/mediboard/internal/domain/appointment"
	"github.com/mediboard/mediboard/internal/domain/hospitalstats"
	"github.com/mediboard/mediboard/internal/domain/medicalrecord"
	"github.com/mediboard/mediboard/internal/domain/patient"
	"github.com/mediboard/mediboard/internal/domain/staff"
)

func newTestServices() Services {
	patientRepo := patient.NewMemRepo()
	staffRepo := staff.NewMemRepo()
	return Services{
		Patients:       patient.NewService(patientRepo),
		Staff:          staff.NewService(staffRepo),
		Appointments:   appointment.NewService(appointment.NewMemRepo(), patientRepo, staffRepo, zerolog.Nop()),
		MedicalRecords: medicalrecord.NewService(medicalrecord.NewMemRepo()),
		HospitalStats:  hospitalstats.NewService(hospitalstats.NewMemRepo()),
	}
}

func TestSeed(t *testing.T) {
	svcs := newTestServices()
	if err := Seed(context.Background(), svcs, zerolog.Nop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	patients, err := svcs.Patients.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 6 {
		t.Errorf("expected 6 patients, got %d", len(patients))
	}

	doctors, _ := svcs.Staff.ListDoctors(context.Background())
	if len(doctors) != 3 {
		t.Errorf("expected 3 doctors, got %d", len(doctors))
	}

	rows, excluded, err := svcs.Appointments.TodayAppointments(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("expected 3 appointments today, got %d", len(rows))
	}
	if excluded != 0 {
		t.Errorf("expected no exclusions, got %d", excluded)
	}

	stats, err := svcs.HospitalStats.Latest(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalBeds != 320 {
		t.Errorf("expected 320 beds, got %d", stats.TotalBeds)
	}
}

func TestSeed_NotIdempotent(t *testing.T) {
	svcs := newTestServices()
	if err := Seed(context.Background(), svcs, zerolog.Nop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Seed(context.Background(), svcs, zerolog.Nop()); err == nil {
		t.Error("expected error when seeding twice into the same store")
	}
}
