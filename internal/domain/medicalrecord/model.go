package medicalrecord

import "time"

// MedicalRecord maps to the medical records collection.
type MedicalRecord struct {
	ID           int        `json:"id"`
	PatientID    int        `json:"patientId"`
	StaffID      int        `json:"staffId"`
	Date         time.Time  `json:"date"`
	Diagnosis    *string    `json:"diagnosis,omitempty"`
	Treatment    *string    `json:"treatment,omitempty"`
	Prescription *string    `json:"prescription,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	FollowUpDate *time.Time `json:"followUpDate,omitempty"`
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	PatientID    *int       `json:"patientId"`
	StaffID      *int       `json:"staffId"`
	Date         *time.Time `json:"date"`
	Diagnosis    *string    `json:"diagnosis"`
	Treatment    *string    `json:"treatment"`
	Prescription *string    `json:"prescription"`
	Notes        *string    `json:"notes"`
	FollowUpDate *time.Time `json:"followUpDate"`
}
