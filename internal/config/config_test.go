package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.False(t, cfg.Redis.Enabled)
	assert.True(t, cfg.API.SearchEmptyNotFound)
	assert.True(t, cfg.Seed.SampleData)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("STORAGE_DRIVER", "POSTGRES")
	t.Setenv("API_SEARCH_EMPTY_NOT_FOUND", "false")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_TTL", "30s")
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.False(t, cfg.API.SearchEmptyNotFound)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.False(t, cfg.Seed.SampleData)
}

func TestValidate(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "prod-secret")
	_, err = Load()
	assert.ErrorContains(t, err, "SEED_SAMPLE_DATA")

	t.Setenv("SEED_SAMPLE_DATA", "true")
	_, err = Load()
	assert.NoError(t, err)

	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_PASSWORD", "")
	_, err = Load()
	assert.ErrorContains(t, err, "DB_PASSWORD")
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DB_PORT", "5439")
	t.Setenv("DB_RETRY_DELAY", "250ms")

	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, 5439, cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, 5*time.Minute, cfg.MaxConnLifetime)
	assert.Equal(t, int32(25), cfg.MaxConns)

	t.Setenv("DB_CONNECT_TIMEOUT", "soon")
	_, err = LoadDatabaseConfig()
	assert.ErrorContains(t, err, "DB_CONNECT_TIMEOUT")
}
