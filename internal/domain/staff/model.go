package staff

// Staff maps to the staff collection.
type Staff struct {
	ID             int     `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Role           string  `json:"role"`
	Specialization *string `json:"specialization,omitempty"`
	PhoneNumber    *string `json:"phoneNumber,omitempty"`
	Email          *string `json:"email,omitempty"`
	Username       string  `json:"username"`
	Password       string  `json:"password"`
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Role           *string `json:"role"`
	Specialization *string `json:"specialization"`
	PhoneNumber    *string `json:"phoneNumber"`
	Email          *string `json:"email"`
	Username       *string `json:"username"`
	Password       *string `json:"password"`
}

// RoleDoctor is the role that the doctors listing filters on.
const RoleDoctor = "Doctor"

// Roles recognized by the directory. Matching is case-sensitive.
var validRoles = map[string]bool{
	RoleDoctor:       true,
	"Nurse":          true,
	"Administrator":  true,
	"Receptionist":   true,
	"Lab Technician": true,
	"Pharmacist":     true,
}

// ValidRole reports whether role is one of the recognized staff roles.
func ValidRole(role string) bool {
	return validRoles[role]
}
