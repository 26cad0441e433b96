package doctor

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	doctors Repository
}

func NewService(doctors Repository) *Service {
	return &Service{doctors: doctors}
}

// List returns the full directory ordered by name. Filtering and paging are
// done client-side against this list, so the server always returns all rows.
func (s *Service) List(ctx context.Context) ([]*Doctor, error) {
	return s.doctors.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}
