package model

import (
	"time"
)

// Roles a user can hold on a board. Owner and writer may create categories;
// goal-level checks are creator-scoped (see service package).
const (
	RoleOwner  = "owner"
	RoleWriter = "writer"
	RoleReader = "reader"
)

// ValidRole reports whether role is one of the known board roles.
func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleWriter, RoleReader:
		return true
	}
	return false
}

// BoardParticipant grants a user a role on a board.
// At most one record exists per (board, user) pair.
type BoardParticipant struct {
	ID        string    `db:"id"`
	BoardID   string    `db:"board_id"`
	UserID    string    `db:"user_id"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (p *BoardParticipant) CanEdit() bool {
	return p.Role == RoleOwner || p.Role == RoleWriter
}
