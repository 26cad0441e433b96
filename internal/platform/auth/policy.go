package auth

import "github.com/google/uuid"

// Policy decides, for a (principal, record owner, operation) triple, whether
// the operation proceeds. It is the single authorization module consulted by
// every listing and mutating operation; endpoints never re-implement the
// role check themselves.
//
// Existence is not this package's concern: callers look the record up first,
// so a missing id surfaces as not-found before authorization is evaluated.
// All predicates are pure.
type Policy struct{}

func NewPolicy() Policy { return Policy{} }

// CanRead reports whether the principal may read a record owned by ownerID.
// Admins read anything; patients read only their own rows. Listing endpoints
// apply the same rule as a query filter rather than a post-hoc check.
func (Policy) CanRead(p Principal, ownerID uuid.UUID) bool {
	return p.Role == RoleAdmin || p.ID == ownerID
}

// CanMutate reports whether the principal may update or delete a record
// owned by ownerID. Admin role or ownership suffices; there is no third
// actor with mutation rights (doctors are inert reference data).
func (Policy) CanMutate(p Principal, ownerID uuid.UUID) bool {
	return p.Role == RoleAdmin || p.ID == ownerID
}

// OwnerOnly reports whether the principal is the record owner. Medical
// records use this gate: no admin override exists for them.
func (Policy) OwnerOnly(p Principal, ownerID uuid.UUID) bool {
	return p.ID == ownerID
}
