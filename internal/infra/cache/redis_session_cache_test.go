package cache

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redisSessionCache) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	sessionCache, ok := NewRedisSessionCache(client).(*redisSessionCache)
	require.True(t, ok)

	return server, sessionCache
}

func TestRedisSessionCache_SetGet(t *testing.T) {
	server, c := newTestCache(t)
	ctx := t.Context()

	require.NoError(t, c.Set(ctx, "user:alice", []byte(`{"username":"alice"}`), time.Minute))

	value, found, err := c.Get(ctx, "user:alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"username":"alice"}`, string(value))
	assert.Equal(t, time.Minute, server.TTL("user:alice"))
}

func TestRedisSessionCache_MissingKey(t *testing.T) {
	_, c := newTestCache(t)

	value, found, err := c.Get(t.Context(), "user:nobody")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestRedisSessionCache_Expiry(t *testing.T) {
	server, c := newTestCache(t)
	ctx := t.Context()

	require.NoError(t, c.Set(ctx, "user:alice", []byte("x"), 30*time.Second))
	server.FastForward(31 * time.Second)

	_, found, err := c.Get(ctx, "user:alice")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisSessionCache_Delete(t *testing.T) {
	_, c := newTestCache(t)
	ctx := t.Context()

	require.NoError(t, c.Set(ctx, "user:alice", []byte("x"), time.Minute))
	require.NoError(t, c.Delete(ctx, "user:alice"))
	require.NoError(t, c.Delete(ctx, "user:alice"))

	_, found, err := c.Get(ctx, "user:alice")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisSessionCache_ServerDown(t *testing.T) {
	server, c := newTestCache(t)
	server.Close()

	_, found, err := c.Get(t.Context(), "user:alice")
	assert.Error(t, err)
	assert.False(t, found)

	assert.Error(t, c.Set(t.Context(), "user:alice", []byte("x"), time.Minute))
}
