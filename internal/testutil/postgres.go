// Package testutil starts a throwaway PostgreSQL for repository tests.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"fyyur/internal/db"
	"fyyur/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// NewPool returns a migrated, empty database. TEST_DATABASE_URL points the
// tests at an existing server; otherwise a postgres container is started, and
// the test is skipped when Docker is not available.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		dsn = startContainer(t)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer sqlDB.Close()

	_, err = migrations.Apply(ctx, sqlDB)
	require.NoError(t, err, "apply migrations")

	_, err = sqlDB.ExecContext(ctx, `TRUNCATE shows, artists, venues RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "truncate tables")

	pool, err := db.New(dsn, 4, "1m")
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

// skipWithoutDocker runs check and turns a panic from it into a skip.
// testcontainers panics rather than skipping when it cannot find a Docker host.
func skipWithoutDocker(t *testing.T, check func(*testing.T)) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Skipf("docker unavailable: %v", r)
		}
	}()
	check(t)
}

func startContainer(t *testing.T) string {
	t.Helper()
	skipWithoutDocker(t, testcontainers.SkipIfProviderIsNotHealthy)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "fyyur",
			"POSTGRES_PASSWORD": "fyyur",
			"POSTGRES_DB":       "fyyur",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://fyyur:fyyur@%s:%s/fyyur?sslmode=disable", host, port.Port())
}
