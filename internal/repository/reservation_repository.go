package repository

import (
	"context"
	"fmt"

	"cinema-tickets/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// reservationRepository implements the ReservationRepository interface using PostgreSQL.
type reservationRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReservationRepository creates a new PostgreSQL-backed reservation repository.
func NewReservationRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReservationRepository {
	return &reservationRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "reservation").Logger(),
	}
}

// Create inserts a new seat reservation.
func (r *reservationRepository) Create(ctx context.Context, reservation *model.SeatReservation) error {
	query := `
		INSERT INTO seat_reservations (id, account_id, seats, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query,
		reservation.ID,
		reservation.AccountID,
		reservation.Seats,
		reservation.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("reservation_id", reservation.ID.String()).
			Int64("account_id", reservation.AccountID).
			Msg("failed to create reservation")
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	r.logger.Debug().
		Str("reservation_id", reservation.ID.String()).
		Msg("reservation created successfully")

	return nil
}

// ListByAccount retrieves the reservations of an account, newest first.
func (r *reservationRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]model.SeatReservation, error) {
	query := `
		SELECT id, account_id, seats, created_at
		FROM seat_reservations
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
			Msg("failed to query reservations")
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	reservations := []model.SeatReservation{}
	for rows.Next() {
		var res model.SeatReservation
		if err := rows.Scan(&res.ID, &res.AccountID, &res.Seats, &res.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan reservation row")
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating reservation rows")
		return nil, fmt.Errorf("error iterating reservations: %w", err)
	}

	return reservations, nil
}
