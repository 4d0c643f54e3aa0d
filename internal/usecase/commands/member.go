package commands

import (
	"context"
	"log/slog"

	"shelflife/internal/domain/team"
	"shelflife/internal/infra/cache"
	"shelflife/internal/pkg/errs"
	"shelflife/internal/usecase"

	"github.com/google/uuid"
)

var ErrNotInvited = errs.E(errs.KindNotMember, "you were not invited to the team")

type MemberCommands interface {
	AcceptInvite(ctx context.Context, callerID, teamID uuid.UUID, code string) (*team.Member, error)
	UpdateRole(ctx context.Context, callerID, teamID, targetID uuid.UUID, role string) (*team.Member, error)
	Remove(ctx context.Context, callerID, teamID, targetID uuid.UUID) error
}

type memberCommandsImpl struct {
	guard   *usecase.Guard
	members MemberRepository
	inv     invalidator
}

func NewMemberCommands(
	guard *usecase.Guard,
	members MemberRepository,
	cacheStore cache.Store,
	logger *slog.Logger,
) MemberCommands {
	return &memberCommandsImpl{
		guard:   guard,
		members: members,
		inv:     newInvalidator(cacheStore, logger),
	}
}

func (c *memberCommandsImpl) AcceptInvite(ctx context.Context, callerID, teamID uuid.UUID, code string) (*team.Member, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}

	m, err := c.members.Find(ctx, teamID, callerID)
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return nil, ErrNotInvited
		}
		return nil, err
	}

	if err := m.AcceptInvite(code); err != nil {
		return nil, err
	}

	if err := c.members.Save(ctx, m); err != nil {
		return nil, err
	}

	c.inv.invalidate(ctx, cache.TeamMembersKey(teamID))

	return m, nil
}

func (c *memberCommandsImpl) UpdateRole(ctx context.Context, callerID, teamID, targetID uuid.UUID, role string) (*team.Member, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}

	if _, err := c.guard.RequireRole(ctx, callerID, teamID, team.RoleManager); err != nil {
		return nil, err
	}

	parsed, err := team.ParseRole(role)
	if err != nil {
		return nil, err
	}

	target, err := c.members.Find(ctx, teamID, targetID)
	if err != nil {
		return nil, err
	}

	target.Role = parsed
	if err := c.members.Save(ctx, target); err != nil {
		return nil, err
	}

	c.inv.invalidate(ctx, cache.TeamMembersKey(teamID))

	return target, nil
}

func (c *memberCommandsImpl) Remove(ctx context.Context, callerID, teamID, targetID uuid.UUID) error {
	if err := requireCaller(callerID); err != nil {
		return err
	}

	if _, err := c.guard.RequireRole(ctx, callerID, teamID, team.RoleManager); err != nil {
		return err
	}

	target, err := c.members.Find(ctx, teamID, targetID)
	if err != nil {
		return err
	}

	// absolute rule, not a permission check: managers leave only when the
	// team itself is deleted
	if err := target.Removable(); err != nil {
		return err
	}

	if err := c.members.Remove(ctx, teamID, targetID); err != nil {
		return err
	}

	c.inv.invalidate(ctx, cache.TeamMembersKey(teamID))

	return nil
}
