package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema holds the tables written by the seat booking and payment services.
const Schema = `
	CREATE TABLE IF NOT EXISTS seat_reservations (
		id UUID PRIMARY KEY,
		account_id BIGINT NOT NULL CHECK (account_id > 0),
		seats INTEGER NOT NULL CHECK (seats >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		account_id BIGINT NOT NULL CHECK (account_id > 0),
		amount INTEGER NOT NULL CHECK (amount >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_seat_reservations_account_id ON seat_reservations(account_id);
	CREATE INDEX IF NOT EXISTS idx_payments_account_id ON payments(account_id);
`

// EnsureSchema creates any missing tables and indexes. It is safe to call repeatedly.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		logger.Error().Err(err).Msg("failed to apply database schema")
		return fmt.Errorf("failed to apply database schema: %w", err)
	}

	logger.Info().Msg("database schema applied")

	return nil
}
