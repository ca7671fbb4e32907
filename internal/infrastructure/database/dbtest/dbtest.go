// Package dbtest connects repository tests to a real PostgreSQL server.
package dbtest

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"

	"bookshelf-api/internal/infrastructure/database"
)

// EnvDSN names the variable holding the test database URL.
const EnvDSN = "TEST_POSTGRES_DSN"

// Pool returns a pool on a freshly migrated and emptied schema, or skips
// the test when TEST_POSTGRES_DSN is unset.
func Pool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		t.Skip(EnvDSN + " not set")
	}

	ctx := context.Background()

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer sqlDB.Close()

	if err := database.Apply(ctx, sqlDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := sqlDB.ExecContext(ctx, `TRUNCATE book_authors, books, authors, users RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}
