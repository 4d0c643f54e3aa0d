package commands

import (
	"context"
	"log/slog"

	"shelflife/internal/infra/cache"
)

// invalidator drops cache keys after a persisted mutation. A failing
// backing store never rolls the mutation back: the stale entry heals on
// natural expiry or the next successful invalidation, so failures are
// logged and swallowed here.
type invalidator struct {
	store  cache.Store
	logger *slog.Logger
}

func newInvalidator(store cache.Store, logger *slog.Logger) invalidator {
	return invalidator{store: store, logger: logger}
}

func (i invalidator) invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := i.store.Delete(ctx, keys...); err != nil {
		i.logger.Warn("cache invalidation failed", "keys", keys, "error", err)
	}
}
