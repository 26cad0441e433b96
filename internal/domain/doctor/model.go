package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is practitioner reference data. Doctors do not log in; they exist
// to be browsed and booked against.
type Doctor struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Email           string    `db:"email" json:"email"`
	Specialization  string    `db:"specialization" json:"specialization"`
	Qualification   string    `db:"qualification" json:"qualification"`
	ExperienceYears int       `db:"experience_years" json:"experience"`
	Rating          float64   `db:"rating" json:"rating"`
	ReviewCount     int       `db:"review_count" json:"reviewCount"`
	ConsultationFee float64   `db:"consultation_fee" json:"consultationFee"`
	Avatar          *string   `db:"avatar" json:"avatar,omitempty"`
	Available       bool      `db:"available" json:"available"`
	NextAvailable   *string   `db:"next_available" json:"nextAvailable,omitempty"`
	Bio             *string   `db:"bio" json:"bio,omitempty"`
	Languages       []string  `db:"languages" json:"languages,omitempty"`
	Hospital        *string   `db:"hospital" json:"hospital,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}
