package container

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-api/internal/config"
	"bookshelf-api/pkg/cache"
)

func memoryConfig(seed bool) *config.Config {
	return &config.Config{
		App:     config.AppConfig{Environment: "test"},
		Storage: config.StorageConfig{Driver: config.StorageMemory},
		JWT:     config.JWTConfig{Secret: "test", AccessTokenExpiry: time.Minute},
		Auth:    config.AuthConfig{Realm: "test", BcryptCost: 4},
		API:     config.APIConfig{SearchEmptyNotFound: true},
		Seed:    config.SeedConfig{SampleData: seed},
	}
}

func TestNewContainerWithMemoryStorage(t *testing.T) {
	c, err := NewContainer(context.Background(), memoryConfig(true))
	require.NoError(t, err)
	defer c.Cleanup()

	assert.Nil(t, c.DB)
	assert.IsType(t, cache.Noop{}, c.Cache)
	assert.NotNil(t, c.UserHandler)
	assert.NotNil(t, c.AuthorHandler)
	assert.NotNil(t, c.BookHandler)

	books, err := c.BookService.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 1)

	assert.Equal(t, map[string]string{"storage": "memory", "cache": "disabled"}, c.Health(context.Background()))
}

func TestNewContainerFallsBackWhenRedisIsDown(t *testing.T) {
	cfg := memoryConfig(false)
	cfg.Redis = config.RedisConfig{Enabled: true, Host: "127.0.0.1:1", TTL: time.Minute}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c, err := NewContainer(ctx, cfg)
	require.NoError(t, err)
	defer c.Cleanup()

	assert.IsType(t, cache.Noop{}, c.Cache)
}
