package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthhub/healthhub/internal/platform/auth"
)

// User maps to the users table. JSON tags follow the camelCase contract
// the web client consumes. The password hash never leaves the server.
type User struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	Email             string     `db:"email" json:"email"`
	PasswordHash      string     `db:"password_hash" json:"-"`
	Name              string     `db:"name" json:"name"`
	Role              auth.Role  `db:"role" json:"role"`
	Phone             *string    `db:"phone" json:"phone,omitempty"`
	Avatar            *string    `db:"avatar" json:"avatar,omitempty"`
	DateOfBirth       *time.Time `db:"date_of_birth" json:"dateOfBirth,omitempty"`
	Gender            *string    `db:"gender" json:"gender,omitempty"`
	BloodGroup        *string    `db:"blood_group" json:"bloodGroup,omitempty"`
	Allergies         []string   `db:"allergies" json:"allergies,omitempty"`
	ChronicConditions []string   `db:"chronic_conditions" json:"chronicConditions,omitempty"`
	Medications       []string   `db:"medications" json:"medications,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updatedAt"`
}

// Principal converts the user row to the auth-layer principal value.
func (u *User) Principal() auth.Principal {
	return auth.Principal{ID: u.ID, Role: u.Role, Name: u.Name, Email: u.Email}
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// LoginInput is the credential payload.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate carries optional field updates. Empty fields keep the prior
// value; the merge happens in the service, not the database.
type ProfileUpdate struct {
	Name              string     `json:"name"`
	Phone             string     `json:"phone"`
	Avatar            string     `json:"avatar"`
	DateOfBirth       *time.Time `json:"dateOfBirth"`
	Gender            string     `json:"gender"`
	BloodGroup        string     `json:"bloodGroup"`
	Allergies         []string   `json:"allergies"`
	ChronicConditions []string   `json:"chronicConditions"`
	Medications       []string   `json:"medications"`
}
