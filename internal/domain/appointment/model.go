package appointment

import (
	"time"

	"github.com/mediboard/mediboard/internal/domain/patient"
)

// Appointment maps to the appointments collection. Date and Time are
// stored separately: Date carries the calendar day, Time the clock time.
type Appointment struct {
	ID        int       `json:"id"`
	PatientID int       `json:"patientId"`
	StaffID   int       `json:"staffId"`
	Date      time.Time `json:"date"`
	Time      time.Time `json:"time"`
	Status    string    `json:"status"`
	Reason    *string   `json:"reason,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	PatientID *int       `json:"patientId"`
	StaffID   *int       `json:"staffId"`
	Date      *time.Time `json:"date"`
	Time      *time.Time `json:"time"`
	Status    *string    `json:"status"`
	Reason    *string    `json:"reason"`
	Notes     *string    `json:"notes"`
}

// PatientRow is one row of the today's-appointments dashboard view: the
// full patient joined with the appointment and the treating doctor.
type PatientRow struct {
	patient.Patient
	AppointmentTime string `json:"appointmentTime"`
	AppointmentDate string `json:"appointmentDate"`
	DoctorName      string `json:"doctorName"`
	Specialization  string `json:"specialization"`
	Status          string `json:"status"`
}

// StatusScheduled is the default status for new appointments.
const StatusScheduled = "Scheduled"

var validStatuses = map[string]bool{
	StatusScheduled: true,
	"Confirmed":     true,
	"Completed":     true,
	"Canceled":      true,
	"Waiting":       true,
	"Rescheduled":   true,
}

// ValidStatus reports whether status is a recognized appointment status.
func ValidStatus(status string) bool {
	return validStatuses[status]
}

// DateKey normalizes a timestamp to its UTC calendar day. Two
// appointments fall on the same day exactly when their keys are equal.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
