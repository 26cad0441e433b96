package record

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, r *MedicalRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*MedicalRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
