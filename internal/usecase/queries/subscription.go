package queries

import (
	"context"
	"log/slog"
	"time"

	"shelflife/internal/domain/subscription"
	"shelflife/internal/infra/cache"
	"shelflife/internal/pkg/clock"
	"shelflife/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNoSubscription      = errs.E(errs.KindNoSubscription, "team doesn't have any subscription")
	ErrSubscriptionExpired = errs.E(errs.KindSubscriptionExpired, "subscription is expired")
)

// BillingSource fetches the raw tier entries for a team from the external
// billing provider.
type BillingSource interface {
	Subscriptions(ctx context.Context, teamID uuid.UUID) (map[string]subscription.Entry, error)
}

type MemberCounter interface {
	CountByTeam(ctx context.Context, teamID uuid.UUID) (int, error)
}

type SubscriptionQueries interface {
	IsTeamActive(ctx context.Context, teamID uuid.UUID) (bool, error)
	CheckMemberLimit(ctx context.Context, teamID uuid.UUID) (*MemberLimitView, error)
}

type subscriptionQueriesImpl struct {
	billing BillingSource
	members MemberCounter
	cache   cache.Store
	ttl     time.Duration
	clock   clock.Clock
	logger  *slog.Logger
}

func NewSubscriptionQueries(
	billing BillingSource,
	members MemberCounter,
	cacheStore cache.Store,
	ttl time.Duration,
	clk clock.Clock,
	logger *slog.Logger,
) SubscriptionQueries {
	return &subscriptionQueriesImpl{
		billing: billing,
		members: members,
		cache:   cacheStore,
		ttl:     ttl,
		clock:   clk,
		logger:  logger,
	}
}

func (q *subscriptionQueriesImpl) IsTeamActive(ctx context.Context, teamID uuid.UUID) (bool, error) {
	snap, err := q.fetchSnapshot(ctx, teamID)
	if err != nil {
		return false, err
	}
	if snap == nil {
		return false, nil
	}
	return snap.ActiveOn(q.clock.Now()), nil
}

func (q *subscriptionQueriesImpl) CheckMemberLimit(ctx context.Context, teamID uuid.UUID) (*MemberLimitView, error) {
	snap, err := q.fetchSnapshot(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, ErrNoSubscription
	}
	if !snap.ActiveOn(q.clock.Now()) {
		return nil, ErrSubscriptionExpired
	}

	count, err := q.members.CountByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return &MemberLimitView{Limit: snap.Capacity, Members: count}, nil
}

// fetchSnapshot resolves the team's subscription, caching the result so the
// billing provider is not hit on every gate call. Absence of a subscription
// is not cached: a team that just subscribed should be let in right away.
func (q *subscriptionQueriesImpl) fetchSnapshot(ctx context.Context, teamID uuid.UUID) (*subscription.Snapshot, error) {
	key := cache.TeamSubscriptionKey(teamID)

	cached, hit, err := cache.Fetch[subscription.Snapshot](ctx, q.cache, key)
	if err != nil {
		q.logger.Warn("cache read failed", "key", key, "error", err)
	}
	if hit {
		return cached, nil
	}

	entries, err := q.billing.Subscriptions(ctx, teamID)
	if err != nil {
		return nil, err
	}

	snap := subscription.Resolve(entries)
	if snap == nil {
		return nil, nil
	}

	if err := cache.Save(ctx, q.cache, key, *snap, q.ttl); err != nil {
		q.logger.Warn("cache save failed", "key", key, "error", err)
	}

	return snap, nil
}
