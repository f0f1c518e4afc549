package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	redisclient "github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/clients/redis"
)

func newRedisAdapter(t *testing.T) (providers.CacheProvider, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisAdapter(redisclient.NewFromClient(client)), mr
}

func TestRedisAdapterGetSetDelete(t *testing.T) {
	ctx := context.Background()
	adapter, mr := newRedisAdapter(t)

	_, err := adapter.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, adapter.Set(ctx, "k", []byte("v"), 60))
	got, err := adapter.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
	assert.Equal(t, 60*time.Second, mr.TTL("k"))

	exists, err := adapter.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, adapter.Delete(ctx, "k"))
	exists, err = adapter.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRedisAdapterIncrStartsWindowOnce(t *testing.T) {
	ctx := context.Background()
	adapter, mr := newRedisAdapter(t)

	n, err := adapter.Incr(ctx, "ratelimit:u1", 3600)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, time.Hour, mr.TTL("ratelimit:u1"))

	mr.FastForward(30 * time.Minute)
	n, err = adapter.Incr(ctx, "ratelimit:u1", 3600)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, 30*time.Minute, mr.TTL("ratelimit:u1"))

	mr.FastForward(31 * time.Minute)
	n, err = adapter.Incr(ctx, "ratelimit:u1", 3600)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRedisAdapterConnectionError(t *testing.T) {
	adapter, mr := newRedisAdapter(t)
	mr.Close()

	_, err := adapter.Incr(context.Background(), "k", 10)
	assert.Error(t, err)
}

func TestMemoryAdapterExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1700000000, 0)
	adapter := &MemoryAdapter{entries: make(map[string]memoryEntry), now: func() time.Time { return now }}

	require.NoError(t, adapter.Set(ctx, "k", []byte("v"), 10))
	got, err := adapter.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	now = now.Add(11 * time.Second)
	_, err = adapter.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryAdapterIncr(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1700000000, 0)
	adapter := &MemoryAdapter{entries: make(map[string]memoryEntry), now: func() time.Time { return now }}

	for i := int64(1); i <= 3; i++ {
		n, err := adapter.Incr(ctx, "c", 60)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}

	now = now.Add(time.Minute)
	n, err := adapter.Incr(ctx, "c", 60)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, adapter.Set(ctx, "s", []byte("text"), 0))
	_, err = adapter.Incr(ctx, "s", 60)
	assert.Error(t, err)
}
