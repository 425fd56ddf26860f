package db

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// New sets up a new pgx connection pool
func New(addr string, maxConns int32, maxIdleTime string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(addr)
	if err != nil {
		return nil, err
	}

	if maxConns > 0 {
		config.MaxConns = maxConns
	}

	if maxIdleTime != "" {
		duration, err := time.ParseDuration(maxIdleTime)
		if err != nil {
			return nil, fmt.Errorf("invalid max idle time %q: %w", maxIdleTime, err)
		}
		config.MaxConnIdleTime = duration
	}

	// Bounds pool start-up, including the initial Ping.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbpool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}

	return dbpool, nil
}

// DSN builds a postgres connection string from its parts. host may carry a port.
func DSN(host, user, password, name string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, password),
		Host:   host,
		Path:   "/" + name,
	}
	return u.String()
}

// DSNFromEnv returns DB_ADDR when set, otherwise a DSN assembled from DB_HOST,
// DB_USER, DB_PASSWORD, DB_NAME and DB_SSLMODE with local development defaults.
func DSNFromEnv() string {
	if addr := os.Getenv("DB_ADDR"); addr != "" {
		return addr
	}
	dsn := DSN(
		getenv("DB_HOST", "localhost:5432"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "abc"),
		getenv("DB_NAME", "fyyurproject"),
	)
	// lib/pq would otherwise insist on TLS.
	return dsn + "?sslmode=" + url.QueryEscape(getenv("DB_SSLMODE", "disable"))
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
