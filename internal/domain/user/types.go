package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator" // lab manager
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleOperator, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsPrivileged reports whether the role may approve, reject and administer
// reservations of other users.
func (r Role) IsPrivileged() bool {
	return r == RoleOperator || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the caller identity handed to the booking core. Authentication and
// the privilege decision happen at the boundary; the core only enforces
// ownership rules with it.
type Actor struct {
	ID         uuid.UUID
	Privileged bool
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Privileged: role.IsPrivileged()}
}

func (a Actor) Owns(ownerID uuid.UUID) bool {
	return a.ID != uuid.Nil && a.ID == ownerID
}

func (a Actor) OwnsOrPrivileged(ownerID uuid.UUID) bool {
	return a.Privileged || a.Owns(ownerID)
}
