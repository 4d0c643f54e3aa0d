package team

import (
	"time"

	"shelflife/internal/pkg/errs"

	"github.com/google/uuid"
)

type Status string

const (
	StatusInvited   Status = "Invited"
	StatusCompleted Status = "Completed"
)

var (
	ErrInviteCodeMismatch = errs.E(errs.KindConflict, "invite code is not valid")
	ErrManagerRemoval     = errs.E(errs.KindConflict, "a manager cannot be removed from the team")
)

type Team struct {
	ID   uuid.UUID
	Name string
}

// Member is one user's role and invitation state within one team.
type Member struct {
	UserID     uuid.UUID
	TeamID     uuid.UUID
	Email      string
	Role       Role
	Status     Status
	InviteCode string
	StoreID    *uuid.UUID
	CreatedAt  time.Time
}

// AcceptInvite completes the membership when the presented code matches.
// The transition is one-way: a Completed membership never reverts.
func (m *Member) AcceptInvite(code string) error {
	if code != m.InviteCode {
		return ErrInviteCodeMismatch
	}
	m.Status = StatusCompleted
	return nil
}

func (m *Member) IsCompleted() bool {
	return m.Status == StatusCompleted
}

// Removable reports whether the member may be removed by a direct
// remove-member action. Managers are only ever removed by deleting the
// whole team, regardless of who asks.
func (m *Member) Removable() error {
	if m.Role == RoleManager {
		return ErrManagerRemoval
	}
	return nil
}
