package cache

import (
	"context"
	"errors"
	"time"

	"shelflife/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "cache get failed")
	}
	return raw, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errs.Wrap(err, "cache set failed")
	}
	return nil
}

// Delete removes keys one at a time so that a failure on one key leaves the
// rest invalidated. Deleting a missing key is a no-op.
func (r *RedisStore) Delete(ctx context.Context, keys ...string) error {
	var combined error
	for _, key := range keys {
		if err := r.client.Del(ctx, key).Err(); err != nil {
			combined = errs.Combine(combined, errs.Wrap(err, "cache delete failed for "+key))
		}
	}
	return combined
}
