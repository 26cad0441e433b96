package auth

import (
	"context"

	"github.com/google/uuid"
)

// Role is the coarse actor classification. Doctors are reference data, not
// principals, so only two roles exist.
type Role string

const (
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	return r == RolePatient || r == RoleAdmin
}

// Principal is the authenticated actor attached to a request. Name and Email
// are carried so appointment creation can snapshot them without a second
// lookup.
type Principal struct {
	ID    uuid.UUID
	Role  Role
	Name  string
	Email string
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

type contextKey string

const principalKey contextKey = "principal"

// WithPrincipal returns a context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext retrieves the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}
