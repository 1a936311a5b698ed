package service

import "github.com/google/uuid"

// Subject is the authenticated identity acting on a resource. It is
// established by the authentication layer before any service call runs.
type Subject struct {
	ID      uuid.UUID
	IsAdmin bool
}

// CanMutate is the single ownership check used by every mutating
// operation: admins may touch anything, everyone else only what they own.
func (s Subject) CanMutate(owner uuid.UUID) bool {
	return s.IsAdmin || s.ID == owner
}
