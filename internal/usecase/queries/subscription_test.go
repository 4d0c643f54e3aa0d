package queries_test

import (
	"context"
	"testing"
	"time"

	"shelflife/internal/domain/subscription"
	"shelflife/internal/domain/team"
	"shelflife/internal/infra/cache"
	"shelflife/internal/pkg/clock"
	"shelflife/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tierFive   = "expirybusiness_monthly_default_5people"
	tierThirty = "expiryteams_monthly_default_30people"
)

func TestSubscriptionGate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	teamID := uuid.New()

	setup := func(entries map[string]subscription.Entry) (*fakeBilling, *fakeMemberReadStore, *fakeCache, *clock.MockClock, queries.SubscriptionQueries) {
		billing := &fakeBilling{entries: map[uuid.UUID]map[string]subscription.Entry{}}
		if entries != nil {
			billing.entries[teamID] = entries
		}
		members := &fakeMemberReadStore{members: []team.Member{
			{UserID: uuid.New(), TeamID: teamID, Role: team.RoleManager, Status: team.StatusCompleted},
			{UserID: uuid.New(), TeamID: teamID, Role: team.RoleRepositor, Status: team.StatusCompleted},
			{UserID: uuid.New(), TeamID: teamID, Role: team.RoleRepositor, Status: team.StatusInvited},
		}}
		cacheStore := newFakeCache()
		clk := clock.NewMockClock(now)
		q := queries.NewSubscriptionQueries(billing, members, cacheStore, 15*time.Minute, clk, testLogger())
		return billing, members, cacheStore, clk, q
	}

	t.Run("no subscription at all", func(t *testing.T) {
		_, _, _, _, q := setup(nil)

		active, err := q.IsTeamActive(ctx, teamID)
		require.NoError(t, err)
		assert.False(t, active)

		_, err = q.CheckMemberLimit(ctx, teamID)
		assert.ErrorIs(t, err, queries.ErrNoSubscription)
	})

	t.Run("expired subscription", func(t *testing.T) {
		_, _, _, _, q := setup(map[string]subscription.Entry{
			tierFive: {ExpiresDate: now.AddDate(0, 0, -2)},
		})

		active, err := q.IsTeamActive(ctx, teamID)
		require.NoError(t, err)
		assert.False(t, active)

		_, err = q.CheckMemberLimit(ctx, teamID)
		assert.ErrorIs(t, err, queries.ErrSubscriptionExpired)
	})

	t.Run("active subscription reports limit against all memberships", func(t *testing.T) {
		_, _, _, _, q := setup(map[string]subscription.Entry{
			tierFive: {ExpiresDate: now.AddDate(0, 1, 0)},
		})

		view, err := q.CheckMemberLimit(ctx, teamID)
		require.NoError(t, err)
		assert.Equal(t, 5, view.Limit)
		// invited seats count against the limit too
		assert.Equal(t, 3, view.Members)
	})

	t.Run("latest expiry wins across tiers", func(t *testing.T) {
		_, _, _, _, q := setup(map[string]subscription.Entry{
			tierFive:   {ExpiresDate: now.AddDate(0, 2, 0)},
			tierThirty: {ExpiresDate: now.AddDate(0, 1, 0)},
		})

		view, err := q.CheckMemberLimit(ctx, teamID)
		require.NoError(t, err)
		assert.Equal(t, 5, view.Limit)
	})

	t.Run("expiring today is still active, yesterday is not", func(t *testing.T) {
		billing, _, cacheStore, clk, q := setup(map[string]subscription.Entry{
			tierFive: {ExpiresDate: time.Date(2026, 3, 15, 0, 0, 1, 0, time.UTC)},
		})

		active, err := q.IsTeamActive(ctx, teamID)
		require.NoError(t, err)
		assert.True(t, active)

		// same snapshot, next day
		delete(cacheStore.entries, cache.TeamSubscriptionKey(teamID))
		clk.Set(now.AddDate(0, 0, 1))
		active, err = q.IsTeamActive(ctx, teamID)
		require.NoError(t, err)
		assert.False(t, active)
		assert.Equal(t, 2, billing.calls)
	})

	t.Run("snapshot is cached with the configured ttl", func(t *testing.T) {
		billing, _, cacheStore, _, q := setup(map[string]subscription.Entry{
			tierFive: {ExpiresDate: now.AddDate(0, 1, 0)},
		})

		_, err := q.IsTeamActive(ctx, teamID)
		require.NoError(t, err)
		_, err = q.CheckMemberLimit(ctx, teamID)
		require.NoError(t, err)

		assert.Equal(t, 1, billing.calls)
		assert.Equal(t, 15*time.Minute, cacheStore.sets[cache.TeamSubscriptionKey(teamID)])
	})

	t.Run("absence is never cached", func(t *testing.T) {
		billing, _, cacheStore, _, q := setup(nil)

		_, _ = q.IsTeamActive(ctx, teamID)
		_, _ = q.IsTeamActive(ctx, teamID)

		assert.Equal(t, 2, billing.calls)
		_, ok := cacheStore.entries[cache.TeamSubscriptionKey(teamID)]
		assert.False(t, ok)
	})
}
