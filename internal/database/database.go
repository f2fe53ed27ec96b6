package database

import (
	"context"
	"fmt"
	"time"

	"restaurant-hub/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// DB bundles the connection pool with the acquire bound applied to
// every repository operation. pgxpool itself waits on the caller's
// context when all connections are busy; without a deadline an
// exhausted pool would park the request goroutine indefinitely.
type DB struct {
	*pgxpool.Pool
	acquireTimeout time.Duration
}

// NewDB wraps an existing pool with the given acquire bound.
func NewDB(pool *pgxpool.Pool, acquireTimeout time.Duration) *DB {
	return &DB{Pool: pool, acquireTimeout: acquireTimeout}
}

// OpBound derives a context that bounds one repository operation,
// including the wait for a pooled connection. The caller must cancel
// it once the operation's results are fully read.
func (db *DB) OpBound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, db.acquireTimeout)
}

// NewPool creates a new PostgreSQL connection pool. The pool is
// constructed once at startup and passed to every component that needs
// storage access; it is closed on shutdown.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	acquireTimeout := time.Duration(cfg.AcquireTimeout) * time.Second

	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.ConnectTimeout = acquireTimeout
	poolConfig.ConnConfig.RuntimeParams["client_encoding"] = "UTF8"

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int("min_connections", cfg.MinConnections).
		Int("max_connections", cfg.MaxConnections).
		Int("acquire_timeout_seconds", cfg.AcquireTimeout).
		Msg("creating database connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("database connection pool created successfully")

	return NewDB(pool, acquireTimeout), nil
}
