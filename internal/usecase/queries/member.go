package queries

import (
	"context"
	"log/slog"
	"time"

	"shelflife/internal/domain/team"
	"shelflife/internal/infra/cache"
	"shelflife/internal/usecase"

	"github.com/google/uuid"
)

type MemberReadStore interface {
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]team.Member, error)
}

type MemberQueries interface {
	ListTeamMembers(ctx context.Context, callerID, teamID uuid.UUID) ([]MemberView, error)
}

type memberQueriesImpl struct {
	readStore MemberReadStore
	cache     cache.Store
	ttl       time.Duration
	logger    *slog.Logger
}

func NewMemberQueries(readStore MemberReadStore, cacheStore cache.Store, ttl time.Duration, logger *slog.Logger) MemberQueries {
	return &memberQueriesImpl{
		readStore: readStore,
		cache:     cacheStore,
		ttl:       ttl,
		logger:    logger,
	}
}

// ListTeamMembers returns the team roster. The caller must be a completed
// member; managers see the full view, everyone else a field-filtered one.
// The raw roster is cached team-wide, so the caller's role is resolved from
// the same list that is served.
func (q *memberQueriesImpl) ListTeamMembers(ctx context.Context, callerID, teamID uuid.UUID) ([]MemberView, error) {
	if callerID == uuid.Nil {
		return nil, usecase.ErrAuthenticationRequired
	}

	members, err := q.loadMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	caller, ok := findMember(members, callerID)
	if !ok || !caller.IsCompleted() {
		return nil, usecase.ErrNotMember
	}

	unredacted := caller.Role == team.RoleManager
	views := make([]MemberView, 0, len(members))
	for _, m := range members {
		views = append(views, toMemberView(m, unredacted))
	}
	return views, nil
}

func (q *memberQueriesImpl) loadMembers(ctx context.Context, teamID uuid.UUID) ([]team.Member, error) {
	key := cache.TeamMembersKey(teamID)

	cached, hit, err := cache.Fetch[[]team.Member](ctx, q.cache, key)
	if err != nil {
		q.logger.Warn("cache read failed", "key", key, "error", err)
	}
	if hit {
		return *cached, nil
	}

	members, err := q.readStore.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if err := cache.Save(ctx, q.cache, key, members, q.ttl); err != nil {
		q.logger.Warn("cache save failed", "key", key, "error", err)
	}

	return members, nil
}

func findMember(members []team.Member, userID uuid.UUID) (team.Member, bool) {
	for _, m := range members {
		if m.UserID == userID {
			return m, true
		}
	}
	return team.Member{}, false
}

func toMemberView(m team.Member, unredacted bool) MemberView {
	view := MemberView{
		ID:     m.UserID,
		Email:  m.Email,
		Role:   m.Role.String(),
		Status: string(m.Status),
	}
	if unredacted {
		code := m.InviteCode
		view.InviteCode = &code
		view.StoreID = m.StoreID
	}
	return view
}
