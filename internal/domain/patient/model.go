package patient

import "time"

// Patient maps to the patients collection.
type Patient struct {
	ID                  int       `json:"id"`
	MedicalRecordNumber string    `json:"medicalRecordNumber"`
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName"`
	DateOfBirth         time.Time `json:"dateOfBirth"`
	Gender              string    `json:"gender"`
	PhoneNumber         *string   `json:"phoneNumber,omitempty"`
	Email               *string   `json:"email,omitempty"`
	Address             *string   `json:"address,omitempty"`
	EmergencyContact    *string   `json:"emergencyContact,omitempty"`
	EmergencyPhone      *string   `json:"emergencyPhone,omitempty"`
	BloodType           *string   `json:"bloodType,omitempty"`
	RegistrationDate    time.Time `json:"registrationDate"`
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	MedicalRecordNumber *string    `json:"medicalRecordNumber"`
	FirstName           *string    `json:"firstName"`
	LastName            *string    `json:"lastName"`
	DateOfBirth         *time.Time `json:"dateOfBirth"`
	Gender              *string    `json:"gender"`
	PhoneNumber         *string    `json:"phoneNumber"`
	Email               *string    `json:"email"`
	Address             *string    `json:"address"`
	EmergencyContact    *string    `json:"emergencyContact"`
	EmergencyPhone      *string    `json:"emergencyPhone"`
	BloodType           *string    `json:"bloodType"`
}
