package team

import (
	"strings"

	"shelflife/internal/pkg/errs"
)

type Role string

const (
	RoleManager    Role = "manager"
	RoleSupervisor Role = "supervisor"
	RoleRepositor  Role = "repositor"
)

var ErrInvalidRole = errs.E(errs.KindConflict, "invalid role")

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleSupervisor, RoleRepositor:
		return true
	default:
		return false
	}
}

// ParseRole normalizes free-form input (trim + lowercase) before matching.
// Anything outside the three known roles is a conflict, including "".
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
