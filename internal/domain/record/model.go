package record

import (
	"time"

	"github.com/google/uuid"
)

// RecordType classifies an uploaded document.
type RecordType string

const (
	TypeLabReport    RecordType = "lab_report"
	TypePrescription RecordType = "prescription"
	TypeImaging      RecordType = "imaging"
	TypeOther        RecordType = "other"
)

func ValidType(t RecordType) bool {
	switch t {
	case TypeLabReport, TypePrescription, TypeImaging, TypeOther:
		return true
	}
	return false
}

// MedicalRecord is a document reference owned by exactly one patient. The
// file itself lives elsewhere; FileURL is opaque to this service.
type MedicalRecord struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	PatientID   uuid.UUID  `db:"patient_id" json:"patientId"`
	Title       string     `db:"title" json:"title"`
	Type        RecordType `db:"type" json:"type"`
	Description *string    `db:"description" json:"description,omitempty"`
	FileURL     *string    `db:"file_url" json:"fileUrl,omitempty"`
	FileName    *string    `db:"file_name" json:"fileName,omitempty"`
	DoctorName  *string    `db:"doctor_name" json:"doctorName,omitempty"`
	UploadedAt  time.Time  `db:"uploaded_at" json:"uploadedAt"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
}

// Draft is the upload payload. The owner is taken from the principal, never
// from the body.
type Draft struct {
	Title       string     `json:"title"`
	Type        RecordType `json:"type"`
	Description string     `json:"description"`
	FileURL     string     `json:"fileUrl"`
	FileName    string     `json:"fileName"`
	DoctorName  string     `json:"doctorName"`
}
