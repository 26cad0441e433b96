// Package portal is the Go client SDK for the HealthHub API. It wraps the
// HTTP surface and carries the small client-side caches the reference UIs
// are built on.
package portal

// User is an account as returned by the API.
type User struct {
	ID                string   `json:"id"`
	Email             string   `json:"email"`
	Name              string   `json:"name"`
	Role              string   `json:"role"`
	Phone             string   `json:"phone,omitempty"`
	Avatar            string   `json:"avatar,omitempty"`
	Gender            string   `json:"gender,omitempty"`
	DateOfBirth       string   `json:"dateOfBirth,omitempty"`
	BloodGroup        string   `json:"bloodGroup,omitempty"`
	Allergies         []string `json:"allergies,omitempty"`
	ChronicConditions []string `json:"chronicConditions,omitempty"`
	Medications       []string `json:"medications,omitempty"`
}

// Doctor is a directory entry.
type Doctor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Specialization  string   `json:"specialization"`
	Qualification   string   `json:"qualification"`
	Experience      int      `json:"experience"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"reviewCount"`
	ConsultationFee float64  `json:"consultationFee"`
	Avatar          string   `json:"avatar,omitempty"`
	Available       bool     `json:"available"`
	NextAvailable   string   `json:"nextAvailable,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	Hospital        string   `json:"hospital,omitempty"`
}

// Appointment statuses as the API spells them.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment is a booking as returned by the API.
type Appointment struct {
	ID                   string `json:"id"`
	PatientID            string `json:"patientId"`
	PatientName          string `json:"patientName"`
	PatientEmail         string `json:"patientEmail"`
	DoctorID             string `json:"doctorId"`
	DoctorName           string `json:"doctorName"`
	DoctorSpecialization string `json:"doctorSpecialization"`
	Date                 string `json:"date"`
	Time                 string `json:"time"`
	Status               string `json:"status"`
	Reason               string `json:"reason"`
	Notes                string `json:"notes,omitempty"`
	CreatedAt            string `json:"createdAt"`
	UpdatedAt            string `json:"updatedAt"`
}

// AppointmentDraft is the booking payload.
type AppointmentDraft struct {
	DoctorID string `json:"doctorId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Reason   string `json:"reason"`
	Notes    string `json:"notes,omitempty"`
}

// MedicalRecord is a document reference as returned by the API.
type MedicalRecord struct {
	ID          string `json:"id"`
	PatientID   string `json:"patientId"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	FileURL     string `json:"fileUrl,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	DoctorName  string `json:"doctorName,omitempty"`
	UploadedAt  string `json:"uploadedAt"`
}

// RecordDraft is the upload payload.
type RecordDraft struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	FileURL     string `json:"fileUrl,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	DoctorName  string `json:"doctorName,omitempty"`
}
