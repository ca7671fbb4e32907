package config

import (
	"fmt"
	"strconv"
	"time"

	"bookshelf-api/internal/infrastructure/database"
)

// LoadDatabaseConfig đọc config từ environment variables và trả về DBConfig
func LoadDatabaseConfig() (*database.DBConfig, error) {
	port, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNECTIONS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNECTIONS: %w", err)
	}

	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNECTIONS", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNECTIONS: %w", err)
	}

	maxRetries, err := strconv.Atoi(getEnv("DB_MAX_RETRIES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_RETRIES: %w", err)
	}
	if maxRetries < 1 {
		return nil, fmt.Errorf("DB_MAX_RETRIES must be at least 1")
	}

	durations := []struct {
		key  string
		def  string
		dest *time.Duration
	}{
		{"DB_MAX_CONN_LIFETIME", "5m", new(time.Duration)},
		{"DB_MAX_CONN_IDLE_TIME", "1m", new(time.Duration)},
		{"DB_HEALTH_CHECK_PERIOD", "1m", new(time.Duration)},
		{"DB_RETRY_DELAY", "1s", new(time.Duration)},
		{"DB_CONNECT_TIMEOUT", "10s", new(time.Duration)},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(getEnv(d.key, d.def))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.key, err)
		}
		*d.dest = v
	}

	return &database.DBConfig{
		Host:              getEnv("DB_HOST", "localhost"),
		Port:              port,
		Username:          getEnv("DB_USER", "bookshelf"),
		Password:          getEnv("DB_PASSWORD", "secret"),
		DBName:            getEnv("DB_NAME", "bookshelf"),
		SSLMode:           getEnv("DB_SSLMODE", "disable"),
		MaxConns:          int32(maxConns),
		MinConns:          int32(minConns),
		MaxConnLifetime:   *durations[0].dest,
		MaxConnIdleTime:   *durations[1].dest,
		HealthCheckPeriod: *durations[2].dest,
		MaxRetries:        maxRetries,
		RetryDelay:        *durations[3].dest,
		ConnectTimeout:    *durations[4].dest,
	}, nil
}
