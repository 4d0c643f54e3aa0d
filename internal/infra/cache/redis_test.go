package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"shelflife/internal/infra/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRedisStoreRoundTrip(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	store := cache.NewRedisStore(client)
	key := "test:" + uuid.NewString()

	_, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, key, []byte(`{"n":1}`), time.Minute))

	raw, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"n":1}`), raw)

	require.NoError(t, store.Delete(ctx, key))

	_, ok, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStoreDeleteMissingKey(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	store := cache.NewRedisStore(client)
	// invalidating a key that was never set is not an error
	assert.NoError(t, store.Delete(context.Background(), "test:missing:"+uuid.NewString()))
}

func TestRedisStoreDeleteMany(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	store := cache.NewRedisStore(client)

	k1 := "test:" + uuid.NewString()
	k2 := "test:" + uuid.NewString()
	require.NoError(t, store.Set(ctx, k1, []byte("a"), time.Minute))
	require.NoError(t, store.Set(ctx, k2, []byte("b"), time.Minute))

	require.NoError(t, store.Delete(ctx, k1, "test:missing", k2))

	_, ok, _ := store.Get(ctx, k1)
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, k2)
	assert.False(t, ok)
}
