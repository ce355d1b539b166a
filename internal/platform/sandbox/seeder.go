// Package sandbox loads a small demo data set for developer on-boarding
// and UI demos: a handful of doctors and patients, appointments falling
// on the current day, one medical record, and one hospital stats row.
package sandbox

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mediboard/mediboard/internal/domain/appointment"
	"github.com/mediboard/mediboard/internal/domain/hospitalstats"
	"github.com/mediboard/mediboard/internal/domain/medicalrecord"
	"github.com/mediboard/mediboard/internal/domain/patient"
	"github.com/mediboard/mediboard/internal/domain/staff"
)

// Services bundles the domain services the seeder writes through, so
// seeded data passes the same validation as API requests.
type Services struct {
	Patients       *patient.Service
	Staff          *staff.Service
	Appointments   *appointment.Service
	MedicalRecords *medicalrecord.Service
	HospitalStats  *hospitalstats.Service
}

// Seed loads the demo fixtures. It is not idempotent and is intended
// for a freshly started in-memory store.
func Seed(ctx context.Context, svcs Services, log zerolog.Logger) error {
	doctors, err := seedStaff(ctx, svcs.Staff)
	if err != nil {
		return fmt.Errorf("seed staff: %w", err)
	}
	patients, err := seedPatients(ctx, svcs.Patients)
	if err != nil {
		return fmt.Errorf("seed patients: %w", err)
	}
	if err := seedAppointments(ctx, svcs.Appointments, patients, doctors); err != nil {
		return fmt.Errorf("seed appointments: %w", err)
	}
	if err := seedMedicalRecords(ctx, svcs.MedicalRecords, patients, doctors); err != nil {
		return fmt.Errorf("seed medical records: %w", err)
	}
	if err := seedStats(ctx, svcs.HospitalStats); err != nil {
		return fmt.Errorf("seed hospital stats: %w", err)
	}

	log.Info().
		Int("staff", len(doctors)).
		Int("patients", len(patients)).
		Msg("demo data loaded")
	return nil
}

func strPtr(s string) *string { return &s }

func seedStaff(ctx context.Context, svc *staff.Service) ([]*staff.Staff, error) {
	doctors := []*staff.Staff{
		{
			FirstName:      "Sarah",
			LastName:       "Johnson",
			Role:           staff.RoleDoctor,
			Specialization: strPtr("Cardiology"),
			PhoneNumber:    strPtr("555-123-4567"),
			Email:          strPtr("sarah.johnson@hospital.com"),
			Username:       "sarah.johnson",
			Password:       "password123",
		},
		{
			FirstName:      "Michael",
			LastName:       "Lee",
			Role:           staff.RoleDoctor,
			Specialization: strPtr("Neurology"),
			PhoneNumber:    strPtr("555-234-5678"),
			Email:          strPtr("michael.lee@hospital.com"),
			Username:       "michael.lee",
			Password:       "password123",
		},
		{
			FirstName:      "Rachel",
			LastName:       "Green",
			Role:           staff.RoleDoctor,
			Specialization: strPtr("Dermatology"),
			PhoneNumber:    strPtr("555-345-6789"),
			Email:          strPtr("rachel.green@hospital.com"),
			Username:       "rachel.green",
			Password:       "password123",
		},
	}
	for _, d := range doctors {
		if err := svc.Create(ctx, d); err != nil {
			return nil, err
		}
	}
	return doctors, nil
}

func seedPatients(ctx context.Context, svc *patient.Service) ([]*patient.Patient, error) {
	now := time.Now().UTC()
	patients := []*patient.Patient{
		{
			MedicalRecordNumber: "P-0012345",
			FirstName:           "Linda",
			LastName:            "Barnes",
			DateOfBirth:         time.Date(1980, 5, 15, 0, 0, 0, 0, time.UTC),
			Gender:              "Female",
			PhoneNumber:         strPtr("555-987-6543"),
			Email:               strPtr("linda.barnes@example.com"),
			Address:             strPtr("123 Main St, Anytown, USA"),
			EmergencyContact:    strPtr("John Barnes"),
			EmergencyPhone:      strPtr("555-987-6544"),
			BloodType:           strPtr("A+"),
			RegistrationDate:    time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			MedicalRecordNumber: "P-0012346",
			FirstName:           "Robert",
			LastName:            "Chen",
			DateOfBirth:         time.Date(1975, 8, 22, 0, 0, 0, 0, time.UTC),
			Gender:              "Male",
			PhoneNumber:         strPtr("555-876-5432"),
			Email:               strPtr("robert.chen@example.com"),
			Address:             strPtr("456 Oak Ave, Anytown, USA"),
			EmergencyContact:    strPtr("Susan Chen"),
			EmergencyPhone:      strPtr("555-876-5433"),
			BloodType:           strPtr("B-"),
			RegistrationDate:    time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			MedicalRecordNumber: "P-0012347",
			FirstName:           "James",
			LastName:            "Wilson",
			DateOfBirth:         time.Date(1990, 3, 10, 0, 0, 0, 0, time.UTC),
			Gender:              "Male",
			PhoneNumber:         strPtr("555-765-4321"),
			Email:               strPtr("james.wilson@example.com"),
			Address:             strPtr("789 Pine St, Anytown, USA"),
			EmergencyContact:    strPtr("Emma Wilson"),
			EmergencyPhone:      strPtr("555-765-4322"),
			BloodType:           strPtr("O+"),
			RegistrationDate:    time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			MedicalRecordNumber: "P-0012348",
			FirstName:           "Emily",
			LastName:            "Taylor",
			DateOfBirth:         time.Date(1985, 11, 27, 0, 0, 0, 0, time.UTC),
			Gender:              "Female",
			PhoneNumber:         strPtr("555-654-3210"),
			Email:               strPtr("emily.taylor@example.com"),
			Address:             strPtr("321 Elm St, Anytown, USA"),
			EmergencyContact:    strPtr("Mark Taylor"),
			EmergencyPhone:      strPtr("555-654-3211"),
			BloodType:           strPtr("AB+"),
			RegistrationDate:    now.AddDate(0, 0, -1),
		},
		{
			MedicalRecordNumber: "P-0012349",
			FirstName:           "David",
			LastName:            "Kim",
			DateOfBirth:         time.Date(1982, 7, 8, 0, 0, 0, 0, time.UTC),
			Gender:              "Male",
			PhoneNumber:         strPtr("555-543-2109"),
			Email:               strPtr("david.kim@example.com"),
			Address:             strPtr("654 Maple St, Anytown, USA"),
			EmergencyContact:    strPtr("Sophia Kim"),
			EmergencyPhone:      strPtr("555-543-2110"),
			BloodType:           strPtr("A-"),
			RegistrationDate:    now.Add(-5 * time.Hour),
		},
		{
			MedicalRecordNumber: "P-0012350",
			FirstName:           "Maria",
			LastName:            "Rodriguez",
			DateOfBirth:         time.Date(1988, 9, 14, 0, 0, 0, 0, time.UTC),
			Gender:              "Female",
			PhoneNumber:         strPtr("555-432-1098"),
			Email:               strPtr("maria.rodriguez@example.com"),
			Address:             strPtr("987 Cedar St, Anytown, USA"),
			EmergencyContact:    strPtr("Carlos Rodriguez"),
			EmergencyPhone:      strPtr("555-432-1099"),
			BloodType:           strPtr("O-"),
			RegistrationDate:    now.Add(-2 * time.Hour),
		},
	}
	for _, p := range patients {
		if err := svc.Register(ctx, p); err != nil {
			return nil, err
		}
	}
	return patients, nil
}

func seedAppointments(ctx context.Context, svc *appointment.Service, patients []*patient.Patient, doctors []*staff.Staff) error {
	today := time.Now().UTC()
	at := func(hour, min int) time.Time {
		return time.Date(today.Year(), today.Month(), today.Day(), hour, min, 0, 0, time.UTC)
	}

	appts := []*appointment.Appointment{
		{
			PatientID: patients[0].ID,
			StaffID:   doctors[0].ID,
			Date:      today,
			Time:      at(9, 30),
			Status:    "Confirmed",
			Reason:    strPtr("Annual checkup"),
			Notes:     strPtr("Patient has history of hypertension"),
		},
		{
			PatientID: patients[1].ID,
			StaffID:   doctors[1].ID,
			Date:      today,
			Time:      at(10, 15),
			Status:    "Waiting",
			Reason:    strPtr("Headache consultation"),
			Notes:     strPtr("Patient reports frequent migraines"),
		},
		{
			PatientID: patients[2].ID,
			StaffID:   doctors[2].ID,
			Date:      today,
			Time:      at(11, 0),
			Status:    "Confirmed",
			Reason:    strPtr("Skin rash examination"),
			Notes:     strPtr("Patient has allergic reactions to certain medications"),
		},
	}
	for _, a := range appts {
		if err := svc.Create(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func seedMedicalRecords(ctx context.Context, svc *medicalrecord.Service, patients []*patient.Patient, doctors []*staff.Staff) error {
	now := time.Now().UTC()
	followUp := now.AddDate(0, 0, 60)
	rec := &medicalrecord.MedicalRecord{
		PatientID:    patients[0].ID,
		StaffID:      doctors[0].ID,
		Date:         now.AddDate(0, 0, -30),
		Diagnosis:    strPtr("Hypertension"),
		Treatment:    strPtr("Prescribed Lisinopril 10mg daily"),
		Prescription: strPtr("Lisinopril 10mg, 30 tablets, take 1 tablet daily"),
		Notes:        strPtr("Patient advised to reduce salt intake and exercise regularly"),
		FollowUpDate: &followUp,
	}
	return svc.Create(ctx, rec)
}

func seedStats(ctx context.Context, svc *hospitalstats.Service) error {
	return svc.Record(ctx, &hospitalstats.Stats{
		Date:               time.Now().UTC(),
		TotalBeds:          320,
		OccupiedBeds:       250,
		AvgStayDuration:    4,
		EmergencyVisits:    42,
		ScheduledSurgeries: 8,
	})
}
