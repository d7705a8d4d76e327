package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStore_SetWritesHashWithTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Hour)

	require.NoError(t, store.Set(ctx, "ns", KeyToken, "t"))
	require.NoError(t, store.Set(ctx, "ns", KeyUser, `{"role":"admin"}`))

	assert.Equal(t, "t", mr.HGet("portal:storage:ns", KeyToken))
	assert.Equal(t, time.Hour, mr.TTL("portal:storage:ns"))

	v, ok, err := store.Get(ctx, "ns", KeyUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"role":"admin"}`, v)

	_, ok, err = store.Get(ctx, "other", KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_ExpiresFixedTTLAfterLastWrite(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Hour)
	require.NoError(t, store.Set(ctx, "ns", KeyToken, "t"))

	mr.FastForward(30 * time.Minute)
	_, ok, err := store.Get(ctx, "ns", KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(31 * time.Minute)
	_, ok, err = store.Get(ctx, "ns", KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_NoTTL(t *testing.T) {
	store, mr := newRedisStore(t, 0)
	require.NoError(t, store.Set(context.Background(), "ns", KeyToken, "t"))
	assert.Zero(t, mr.TTL("portal:storage:ns"))
}

func TestRedisStore_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Hour)
	require.NoError(t, store.Set(ctx, "ns", KeyToken, "t"))
	require.NoError(t, store.Set(ctx, "ns", KeyUser, "u"))

	require.NoError(t, store.Remove(ctx, "ns", KeyToken))
	_, ok, err := store.Get(ctx, "ns", KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, mr.Exists("portal:storage:ns"))

	require.NoError(t, store.Clear(ctx, "ns"))
	assert.False(t, mr.Exists("portal:storage:ns"))
}

func TestRedisStore_ServerDown(t *testing.T) {
	store, mr := newRedisStore(t, time.Hour)
	mr.Close()

	_, _, err := store.Get(context.Background(), "ns", KeyToken)
	assert.Error(t, err)
	assert.Error(t, store.Set(context.Background(), "ns", KeyToken, "t"))
}
