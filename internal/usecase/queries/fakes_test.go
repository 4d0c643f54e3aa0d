package queries_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"shelflife/internal/domain/subscription"
	"shelflife/internal/domain/team"
	"shelflife/internal/pkg/errs"
	"shelflife/internal/usecase/queries"

	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeCache struct {
	entries map[string][]byte
	sets    map[string]time.Duration
	getErr  error
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}, sets: map[string]time.Duration{}}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	raw, ok := f.entries[key]
	return raw, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key] = value
	f.sets[key] = ttl
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.entries, key)
	}
	return nil
}

type fakeProductReadStore struct {
	details map[uuid.UUID]*queries.ProductDetail
	calls   int
}

func (f *fakeProductReadStore) FindDetail(_ context.Context, id uuid.UUID) (*queries.ProductDetail, error) {
	f.calls++
	d, ok := f.details[id]
	if !ok {
		return nil, errs.E(errs.KindNotFound, "product not found")
	}
	return d, nil
}

type fakeMemberReadStore struct {
	members []team.Member
	calls   int
}

func (f *fakeMemberReadStore) ListByTeam(_ context.Context, teamID uuid.UUID) ([]team.Member, error) {
	f.calls++
	var out []team.Member
	for _, m := range f.members {
		if m.TeamID == teamID {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeMemberReadStore doubles as the membership reader the guard needs.
func (f *fakeMemberReadStore) Find(_ context.Context, teamID, userID uuid.UUID) (*team.Member, error) {
	for _, m := range f.members {
		if m.TeamID == teamID && m.UserID == userID {
			cp := m
			return &cp, nil
		}
	}
	return nil, errs.E(errs.KindNotFound, "membership not found")
}

func (f *fakeMemberReadStore) CountByTeam(_ context.Context, teamID uuid.UUID) (int, error) {
	n := 0
	for _, m := range f.members {
		if m.TeamID == teamID {
			n++
		}
	}
	return n, nil
}

type fakeBilling struct {
	entries map[uuid.UUID]map[string]subscription.Entry
	err     error
	calls   int
}

func (f *fakeBilling) Subscriptions(_ context.Context, teamID uuid.UUID) (map[string]subscription.Entry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[teamID], nil
}
