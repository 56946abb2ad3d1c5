package users

import "time"

const (
	RoleSeeker  = "seeker"
	RolePoster  = "poster"
	RoleAlumni  = "alumni"
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// SelfServiceRoles are the roles a user may pick at registration.
var SelfServiceRoles = []string{RoleSeeker, RolePoster, RoleAlumni, RoleStudent}

// ValidRole reports whether role is a known role.
func ValidRole(role string) bool {
	switch role {
	case RoleSeeker, RolePoster, RoleAlumni, RoleStudent, RoleAdmin:
		return true
	}
	return false
}

// SelfServiceRole reports whether role may be self-assigned at registration.
func SelfServiceRole(role string) bool {
	return ValidRole(role) && role != RoleAdmin
}

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	FullName       string    `json:"fullName"`
	Role           string    `json:"role"`
	GraduationYear *int      `json:"graduationYear,omitempty"`
	Company        string    `json:"company,omitempty"`
	Headline       string    `json:"headline,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ResetToken is a single-use password reset credential.
type ResetToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}
