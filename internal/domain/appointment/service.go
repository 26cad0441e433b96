package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/healthhub/healthhub/internal/domain/doctor"
	"github.com/healthhub/healthhub/internal/platform/apperr"
	"github.com/healthhub/healthhub/internal/platform/auth"
)

// DoctorSource resolves the doctor snapshot fields at booking time.
type DoctorSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*doctor.Doctor, error)
}

type Service struct {
	appts   Repository
	doctors DoctorSource
	policy  auth.Policy
}

func NewService(appts Repository, doctors DoctorSource, policy auth.Policy) *Service {
	return &Service{appts: appts, doctors: doctors, policy: policy}
}

// List returns the appointments visible to the principal, newest first.
// Admins see every row; patients see only their own bookings.
func (s *Service) List(ctx context.Context, p auth.Principal) ([]*Appointment, error) {
	if p.IsAdmin() {
		return s.appts.ListAll(ctx)
	}
	return s.appts.ListByPatient(ctx, p.ID)
}

// Create books an appointment for the acting principal. The patient and
// doctor identity fields are snapshotted server-side; a client-supplied
// status is ignored and new rows are always pending.
func (s *Service) Create(ctx context.Context, p auth.Principal, in Draft) (*Appointment, error) {
	if in.DoctorID == uuid.Nil {
		return nil, apperr.Validationf("doctorId", "is required")
	}
	if strings.TrimSpace(in.Date) == "" {
		return nil, apperr.Validationf("date", "is required")
	}
	if strings.TrimSpace(in.Time) == "" {
		return nil, apperr.Validationf("time", "is required")
	}
	if strings.TrimSpace(in.Reason) == "" {
		return nil, apperr.Validationf("reason", "is required")
	}

	doc, err := s.doctors.GetByID(ctx, in.DoctorID)
	if err != nil {
		return nil, err
	}

	a := &Appointment{
		PatientID:            p.ID,
		PatientName:          p.Name,
		PatientEmail:         p.Email,
		DoctorID:             doc.ID,
		DoctorName:           doc.Name,
		DoctorSpecialization: doc.Specialization,
		Date:                 in.Date,
		Time:                 in.Time,
		Status:               StatusPending,
		Reason:               in.Reason,
	}
	if in.Notes != "" {
		a.Notes = &in.Notes
	}

	if err := s.appts.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateStatus applies a status or notes change. Lookup comes before the
// authorization check, so unknown ids answer not-found even to strangers.
// Empty fields keep the stored values; the status need only be a member of
// the enum, not a legal successor of the current one.
func (s *Service) UpdateStatus(ctx context.Context, p auth.Principal, id uuid.UUID, in StatusUpdate) (*Appointment, error) {
	a, err := s.appts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanMutate(p, a.PatientID) {
		return nil, apperr.Forbidden("Not authorized to update this appointment")
	}

	if in.Status != "" {
		if !ValidStatus(in.Status) {
			return nil, apperr.Validationf("status", "must be one of pending, approved, rejected, completed, cancelled")
		}
		a.Status = in.Status
	}
	if in.Notes != "" {
		a.Notes = &in.Notes
	}

	if err := s.appts.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an appointment. Same ordering as UpdateStatus: not-found
// first, then the ownership check.
func (s *Service) Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	a, err := s.appts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.policy.CanMutate(p, a.PatientID) {
		return apperr.Forbidden("Not authorized to delete this appointment")
	}
	return s.appts.Delete(ctx, a.ID)
}
