package database

import (
	"context"
	"fmt"
	"time"

	"cinema-tickets/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	maxConnIdleTime   = 30 * time.Minute
	healthCheckPeriod = time.Minute
	initialBackoff    = 500 * time.Millisecond
)

// NewPool opens the PostgreSQL pool that stores reservations and payments and
// waits until the server answers a ping, retrying up to cfg.ConnectAttempts times.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	logger = logger.With().Str("component", "database").Logger()

	poolConfig, err := buildPoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int32("max_connections", poolConfig.MaxConns).
		Int32("min_connections", poolConfig.MinConns).
		Msg("opening database pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := waitForDatabase(ctx, pool, cfg.ConnectAttempts, logger); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info().Msg("database pool ready")

	return pool, nil
}

// buildPoolConfig translates the application settings into a pgx pool configuration.
func buildPoolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = maxConnIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod

	return poolConfig, nil
}

// waitForDatabase pings until the server responds, doubling the pause between attempts.
func waitForDatabase(ctx context.Context, pool *pgxpool.Pool, attempts int, logger zerolog.Logger) error {
	if attempts < 1 {
		attempts = 1
	}

	backoff := initialBackoff
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = pool.Ping(ctx); err == nil {
			return nil
		}

		logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", attempts).
			Msg("database not reachable")

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to ping database: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return fmt.Errorf("failed to ping database after %d attempts: %w", attempts, err)
}
