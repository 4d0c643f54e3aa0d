package cache

import (
	"context"
	"encoding/json"
	"time"

	"shelflife/internal/pkg/errs"
)

// Store is the cache-aside backing store: string keys to serialized values.
// Read-through is caller-orchestrated — a caller gets, fetches from the
// source of truth on a miss, and saves. The store enforces no key naming;
// key construction lives in keys.go so writers invalidate exactly what
// readers populate. Errors from the store are non-fatal to mutations by
// contract: callers log and move on.
type Store interface {
	// Get returns the raw value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set saves a value. A zero ttl means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete invalidates each key independently; a missing key is not an
	// error and one key's failure does not abort the rest.
	Delete(ctx context.Context, keys ...string) error
}

// Fetch unmarshals a cached value into T. A miss or an undecodable entry
// reports not-found without an error.
func Fetch[T any](ctx context.Context, s Store, key string) (*T, bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		// treat a corrupt entry as a miss; the caller repopulates it
		return nil, false, nil
	}
	return &out, true, nil
}

// Save marshals and stores a value under key.
func Save[T any](ctx context.Context, s Store, key string, value T, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errs.Wrap(err, "failed to marshal cache value")
	}
	return s.Set(ctx, key, raw, ttl)
}
