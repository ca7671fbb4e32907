package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultJWTSecret = "your-secret-key-change-in-production"

	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config chứa toàn bộ application configuration, populated from the environment.
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Auth    AuthConfig
	API     APIConfig
	Seed    SeedConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

type StorageConfig struct {
	Driver  string // memory | postgres
	Migrate bool   // apply the embedded schema on startup
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Password string
	DB       int
	TTL      time.Duration
}

type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

type AuthConfig struct {
	Realm      string
	BcryptCost int
}

type APIConfig struct {
	// SearchEmptyNotFound answers an empty search with 404 instead of 200 and an empty list.
	SearchEmptyNotFound bool
}

type SeedConfig struct {
	SampleData bool
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookshelf API"),
			Environment: env,
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Driver:  strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
			Migrate: getEnvBool("DB_MIGRATE", true),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("REDIS_TTL", 15*time.Minute),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", defaultJWTSecret),
			AccessTokenExpiry: getEnvDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
		},
		Auth: AuthConfig{
			Realm:      getEnv("AUTH_REALM", "bookshelf"),
			BcryptCost: getEnvInt("BCRYPT_COST", 10),
		},
		API: APIConfig{
			SearchEmptyNotFound: getEnvBool("API_SEARCH_EMPTY_NOT_FOUND", true),
		},
		Seed: SeedConfig{
			SampleData: getEnvBool("SEED_SAMPLE_DATA", env == "development"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}

	if c.JWT.AccessTokenExpiry <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRY must be positive")
	}

	// every route needs a login and memory storage starts empty
	if c.Storage.Driver == StorageMemory && !c.Seed.SampleData {
		return fmt.Errorf("STORAGE_DRIVER=memory requires SEED_SAMPLE_DATA=true, otherwise no user can log in")
	}

	if c.App.Environment == "production" {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Storage.Driver == StoragePostgres && os.Getenv("DB_PASSWORD") == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}

	return nil
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
