package cache

import (
	"context"
	"testing"
	"time"

	pkgcache "b2b-showcase-backend/pkg/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (pkgcache.Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCacheFromClient(client), mr
}

func TestRedisCache_SetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, c.Set(ctx, "key", payload{Name: "rice", Count: 3}, 0))

	var got payload
	found, err := c.Get(ctx, "key", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, payload{Name: "rice", Count: 3}, got)
}

func TestRedisCache_MissLeavesDestUntouched(t *testing.T) {
	c, _ := newTestCache(t)

	got := "sentinel"
	found, err := c.Get(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "sentinel", got)
}

func TestRedisCache_TTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", "value", time.Minute))

	mr.FastForward(2 * time.Minute)

	var got string
	found, err := c.Get(ctx, "short", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_DeleteAndExists(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", 1, 0))
	require.NoError(t, c.Set(ctx, "b", 2, 0))

	exists, err := c.Exists(ctx, "a")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, c.Delete(ctx, "a", "b"))

	exists, err = c.Exists(ctx, "a")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting nothing is a no-op.
	require.NoError(t, c.Delete(ctx))
}

func TestRedisCache_GetError(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	var got string
	_, err := c.Get(context.Background(), "key", &got)
	assert.Error(t, err)
}
