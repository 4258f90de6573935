package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb), mr
}

func TestClient_SetGetDelete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, c.Delete(ctx, "k"))
	got, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_TTLExpires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Second))
	mr.FastForward(2 * time.Second)

	got, _ := c.Get(ctx, "k")
	assert.Nil(t, got)
}

func TestClient_FailsSafeWhenRedisDown(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	mr.Close()

	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.Error(t, c.Ping(ctx))
}

func TestClient_NilIsAlwaysMiss(t *testing.T) {
	var c *Client
	ctx := context.Background()

	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, c.GetJSON(ctx, "k", &struct{}{}))
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
}

func TestClient_JSONRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	type item struct {
		Name string `json:"name"`
	}
	require.NoError(t, c.SetJSON(ctx, "item", item{Name: "camp"}, time.Minute))

	var got item
	assert.True(t, c.GetJSON(ctx, "item", &got))
	assert.Equal(t, "camp", got.Name)
}

func TestClient_Incr(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Incr(ctx, "gen"))
	require.NoError(t, c.Incr(ctx, "gen"))

	got, err := c.Get(ctx, "gen")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)

	mr.Close()
	assert.NoError(t, c.Incr(ctx, "gen"))
}
