package user

import "github.com/google/uuid"

// Actor is the authenticated identity performing an operation, resolved
// once per request and passed explicitly into lifecycle operations.
// Permission checks compare Actor.ID against the participants recorded
// on the service rather than re-deriving the role from request state.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

func (a Actor) IsClient() bool {
	return a.Role == RoleClient
}

func (a Actor) IsBabysitter() bool {
	return a.Role == RoleBabysitter
}
