package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgcache "bookshelf-api/pkg/cache"
)

var _ pkgcache.Cache = (*RedisCache)(nil)

// Runs against a real server when TEST_REDIS_ADDR is set.
func TestRedisCacheRoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	c := NewRedisCache(addr, "", 0, "test:"+uuid.NewString()+":")
	defer c.Close()
	require.NoError(t, c.Connect(ctx))

	type payload struct {
		Name string `json:"name"`
	}

	var got payload
	found, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "k", payload{Name: "King"}, time.Minute))
	found, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "King", got.Name)

	stored, err := c.SetIfAbsent(ctx, "k", payload{Name: "Rowling"}, time.Minute)
	require.NoError(t, err)
	assert.False(t, stored)
	found, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "King", got.Name)

	require.NoError(t, c.Delete(ctx, "k"))
	found, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	stored, err = c.SetIfAbsent(ctx, "k", payload{Name: "Rowling"}, time.Minute)
	require.NoError(t, err)
	assert.True(t, stored)
}

func TestPingUnreachable(t *testing.T) {
	c := NewRedisCache("127.0.0.1:1", "", 0, "")
	defer c.Close()

	assert.Error(t, c.Ping(context.Background()))
	assert.NoError(t, c.Delete(context.Background()))
}
