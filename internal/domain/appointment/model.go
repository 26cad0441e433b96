package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Status is the appointment lifecycle state. Transitions are not guarded
// server-side; any enumerated status may replace any other. The booking
// workflow (request, approve or reject, cancel) is enforced by the clients.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ValidStatus reports enum membership only.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment is a booking row. Patient and doctor identity fields are
// snapshots taken at creation; later profile edits do not flow back into
// existing rows. Date and time are stored as the client sent them.
type Appointment struct {
	ID                   uuid.UUID `db:"id" json:"id"`
	PatientID            uuid.UUID `db:"patient_id" json:"patientId"`
	PatientName          string    `db:"patient_name" json:"patientName"`
	PatientEmail         string    `db:"patient_email" json:"patientEmail"`
	DoctorID             uuid.UUID `db:"doctor_id" json:"doctorId"`
	DoctorName           string    `db:"doctor_name" json:"doctorName"`
	DoctorSpecialization string    `db:"doctor_specialization" json:"doctorSpecialization"`
	Date                 string    `db:"date" json:"date"`
	Time                 string    `db:"time" json:"time"`
	Status               Status    `db:"status" json:"status"`
	Reason               string    `db:"reason" json:"reason"`
	Notes                *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt            time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time `db:"updated_at" json:"updatedAt"`
}

// Draft is the booking payload. Status is ignored on create; new rows are
// always pending.
type Draft struct {
	DoctorID uuid.UUID `json:"doctorId"`
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	Reason   string    `json:"reason"`
	Notes    string    `json:"notes"`
}

// StatusUpdate carries the mutable fields of an update request. Empty
// fields keep the stored values.
type StatusUpdate struct {
	Status Status `json:"status"`
	Notes  string `json:"notes"`
}
