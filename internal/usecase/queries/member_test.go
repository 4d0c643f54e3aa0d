package queries_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"shelflife/internal/domain/team"
	"shelflife/internal/infra/cache"
	"shelflife/internal/usecase"
	"shelflife/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTeamMembers(t *testing.T) {
	ctx := context.Background()

	teamID := uuid.New()
	managerID := uuid.New()
	workerID := uuid.New()
	invitedID := uuid.New()
	storeID := uuid.New()

	setup := func() (*fakeMemberReadStore, *fakeCache, queries.MemberQueries) {
		readStore := &fakeMemberReadStore{members: []team.Member{
			{UserID: managerID, TeamID: teamID, Email: "boss@shop.test", Role: team.RoleManager, Status: team.StatusCompleted, InviteCode: "BOSS01"},
			{UserID: workerID, TeamID: teamID, Email: "worker@shop.test", Role: team.RoleRepositor, Status: team.StatusCompleted, InviteCode: "WRK001", StoreID: &storeID},
			{UserID: invitedID, TeamID: teamID, Email: "new@shop.test", Role: team.RoleSupervisor, Status: team.StatusInvited, InviteCode: "NEW001"},
		}}
		cacheStore := newFakeCache()
		q := queries.NewMemberQueries(readStore, cacheStore, time.Minute, testLogger())
		return readStore, cacheStore, q
	}

	t.Run("manager sees invite codes and store assignments", func(t *testing.T) {
		_, _, q := setup()

		views, err := q.ListTeamMembers(ctx, managerID, teamID)
		require.NoError(t, err)
		require.Len(t, views, 3)

		for _, v := range views {
			require.NotNil(t, v.InviteCode, "member %s", v.Email)
		}
		worker := viewByID(t, views, workerID)
		require.NotNil(t, worker.StoreID)
		assert.Equal(t, storeID, *worker.StoreID)
		assert.Equal(t, "WRK001", *worker.InviteCode)
	})

	t.Run("non-manager gets the redacted view", func(t *testing.T) {
		_, _, q := setup()

		views, err := q.ListTeamMembers(ctx, workerID, teamID)
		require.NoError(t, err)
		require.Len(t, views, 3)

		for _, v := range views {
			assert.Nil(t, v.InviteCode, "member %s", v.Email)
			assert.Nil(t, v.StoreID, "member %s", v.Email)
		}
	})

	t.Run("invited member cannot list yet", func(t *testing.T) {
		_, _, q := setup()
		_, err := q.ListTeamMembers(ctx, invitedID, teamID)
		assert.ErrorIs(t, err, usecase.ErrNotMember)
	})

	t.Run("roster is cached team-wide and served from cache", func(t *testing.T) {
		readStore, cacheStore, q := setup()

		_, err := q.ListTeamMembers(ctx, managerID, teamID)
		require.NoError(t, err)
		assert.Equal(t, 1, readStore.calls)

		raw, ok := cacheStore.entries[cache.TeamMembersKey(teamID)]
		require.True(t, ok)
		var cached []team.Member
		require.NoError(t, json.Unmarshal(raw, &cached))
		assert.Len(t, cached, 3)

		_, err = q.ListTeamMembers(ctx, workerID, teamID)
		require.NoError(t, err)
		assert.Equal(t, 1, readStore.calls)
	})

	t.Run("outsider cannot list", func(t *testing.T) {
		_, _, q := setup()
		_, err := q.ListTeamMembers(ctx, uuid.New(), teamID)
		assert.ErrorIs(t, err, usecase.ErrNotMember)
	})
}

func viewByID(t *testing.T, views []queries.MemberView, id uuid.UUID) queries.MemberView {
	t.Helper()
	for _, v := range views {
		if v.ID == id {
			return v
		}
	}
	t.Fatalf("member %s not in views", id)
	return queries.MemberView{}
}
