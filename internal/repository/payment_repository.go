package repository

import (
	"context"
	"fmt"

	"cinema-tickets/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// paymentRepository implements the PaymentRepository interface using PostgreSQL.
type paymentRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPaymentRepository creates a new PostgreSQL-backed payment repository.
func NewPaymentRepository(pool *pgxpool.Pool, logger zerolog.Logger) PaymentRepository {
	return &paymentRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "payment").Logger(),
	}
}

// Create inserts a new payment.
func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	query := `
		INSERT INTO payments (id, account_id, amount, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, payment.ID, payment.AccountID, payment.Amount, payment.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("payment_id", payment.ID.String()).
			Int64("account_id", payment.AccountID).
			Msg("failed to create payment")
		return fmt.Errorf("failed to create payment: %w", err)
	}

	r.logger.Debug().
		Str("payment_id", payment.ID.String()).
		Msg("payment created successfully")

	return nil
}

// ListByAccount retrieves the payments of an account, newest first.
func (r *paymentRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]model.Payment, error) {
	query := `
		SELECT id, account_id, amount, created_at
		FROM payments
		WHERE account_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).
			Int64("account_id", accountID).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query payments")
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []model.Payment{}
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.AccountID, &p.Amount, &p.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan payment row")
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating payment rows")
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}

	return payments, nil
}
