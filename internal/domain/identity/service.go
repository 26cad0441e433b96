package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/healthhub/healthhub/internal/platform/apperr"
	"github.com/healthhub/healthhub/internal/platform/auth"
)

const bcryptCost = 10

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// Register creates a new account. The role defaults to patient; duplicate
// emails are rejected before any write.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, apperr.Validationf("email", "is required")
	}
	if in.Password == "" {
		return nil, apperr.Validationf("password", "is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Validationf("name", "is required")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperr.New(apperr.Validation, "User already exists")
	}

	role := auth.Role(in.Role)
	if !role.Valid() {
		role = auth.RolePatient
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(in.Name),
		Role:         role,
	}
	if in.Phone != "" {
		u.Phone = &in.Phone
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Authenticate verifies a credential pair. The same failure is returned for
// unknown email and wrong password so the endpoint does not leak which part
// was wrong.
func (s *Service) Authenticate(ctx context.Context, in LoginInput) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Unauthenticated("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperr.Unauthenticated("Invalid email or password")
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfile merges the provided fields into the stored user. Empty
// fields keep their prior values; role and email are immutable here.
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, in ProfileUpdate) (*User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Phone != "" {
		u.Phone = &in.Phone
	}
	if in.Avatar != "" {
		u.Avatar = &in.Avatar
	}
	if in.DateOfBirth != nil {
		u.DateOfBirth = in.DateOfBirth
	}
	if in.Gender != "" {
		u.Gender = &in.Gender
	}
	if in.BloodGroup != "" {
		u.BloodGroup = &in.BloodGroup
	}
	if in.Allergies != nil {
		u.Allergies = in.Allergies
	}
	if in.ChronicConditions != nil {
		u.ChronicConditions = in.ChronicConditions
	}
	if in.Medications != nil {
		u.Medications = in.Medications
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// ListPatients returns users with the patient role, newest first.
func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*User, int, error) {
	return s.users.ListByRole(ctx, string(auth.RolePatient), limit, offset)
}
