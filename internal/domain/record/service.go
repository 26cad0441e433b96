package record

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/healthhub/healthhub/internal/platform/apperr"
	"github.com/healthhub/healthhub/internal/platform/auth"
)

type Service struct {
	records Repository
	policy  auth.Policy
}

func NewService(records Repository, policy auth.Policy) *Service {
	return &Service{records: records, policy: policy}
}

// List returns the principal's own records, newest upload first. Records
// are private to their owner; admins have no read path here.
func (s *Service) List(ctx context.Context, p auth.Principal) ([]*MedicalRecord, error) {
	return s.records.ListByPatient(ctx, p.ID)
}

// Create stores a document reference owned by the principal.
func (s *Service) Create(ctx context.Context, p auth.Principal, in Draft) (*MedicalRecord, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Validationf("title", "is required")
	}
	if !ValidType(in.Type) {
		return nil, apperr.Validationf("type", "must be one of lab_report, prescription, imaging, other")
	}

	m := &MedicalRecord{
		PatientID:  p.ID,
		Title:      strings.TrimSpace(in.Title),
		Type:       in.Type,
		UploadedAt: time.Now(),
	}
	if in.Description != "" {
		m.Description = &in.Description
	}
	if in.FileURL != "" {
		m.FileURL = &in.FileURL
	}
	if in.FileName != "" {
		m.FileName = &in.FileName
	}
	if in.DoctorName != "" {
		m.DoctorName = &in.DoctorName
	}

	if err := s.records.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes a record. Lookup first, then the owner check: admins are
// refused like any other non-owner, and a repeated delete answers
// not-found.
func (s *Service) Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	m, err := s.records.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.policy.OwnerOnly(p, m.PatientID) {
		return apperr.Forbidden("Not authorized to delete this record")
	}
	return s.records.Delete(ctx, m.ID)
}
