package usecase

import (
	"context"

	"shelflife/internal/domain/team"
	"shelflife/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAuthenticationRequired = errs.E(errs.KindAuthRequired, "provide the user id")
	ErrNotMember              = errs.E(errs.KindNotMember, "you are not a member of this team")
	ErrForbidden              = errs.E(errs.KindForbidden, "you don't have permission to do that")
)

type MembershipReader interface {
	Find(ctx context.Context, teamID, userID uuid.UUID) (*team.Member, error)
}

// Guard resolves a caller's role within a team and enforces per-action
// allow-lists. The role set is flat: manager outranks nobody unless an
// action's allow-list says so.
type Guard struct {
	members MembershipReader
}

func NewGuard(members MembershipReader) *Guard {
	return &Guard{members: members}
}

// ResolveRole returns the caller's role in the team. Only a Completed
// membership counts; invited-but-unconfirmed users are not members yet.
func (g *Guard) ResolveRole(ctx context.Context, userID, teamID uuid.UUID) (team.Role, error) {
	m, err := g.members.Find(ctx, teamID, userID)
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return "", ErrNotMember
		}
		return "", err
	}
	if !m.IsCompleted() {
		return "", ErrNotMember
	}
	return m.Role, nil
}

// RequireRole resolves the caller's role and checks it against the action's
// allow-list.
func (g *Guard) RequireRole(ctx context.Context, userID, teamID uuid.UUID, allowed ...team.Role) (team.Role, error) {
	role, err := g.ResolveRole(ctx, userID, teamID)
	if err != nil {
		return "", err
	}
	for _, a := range allowed {
		if role == a {
			return role, nil
		}
	}
	return "", ErrForbidden
}

// RequireMember admits any completed membership regardless of role.
func (g *Guard) RequireMember(ctx context.Context, userID, teamID uuid.UUID) (team.Role, error) {
	return g.ResolveRole(ctx, userID, teamID)
}
