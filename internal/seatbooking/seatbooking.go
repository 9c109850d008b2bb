package seatbooking

import (
	"context"
	"fmt"
	"time"

	"cinema-tickets/internal/model"
	"cinema-tickets/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SeatReservationService reserves seats for an account.
type SeatReservationService interface {
	// ReserveSeat holds totalSeatsToAllocate seats for the account.
	ReserveSeat(ctx context.Context, accountID int64, totalSeatsToAllocate int) error
}

// seatReservationService implements SeatReservationService by recording each
// reservation in the reservation repository.
type seatReservationService struct {
	repo   repository.ReservationRepository
	logger zerolog.Logger
}

// NewSeatReservationService creates a new repository-backed seat reservation service.
func NewSeatReservationService(repo repository.ReservationRepository, logger zerolog.Logger) SeatReservationService {
	return &seatReservationService{
		repo:   repo,
		logger: logger.With().Str("component", "seat-booking").Logger(),
	}
}

// ReserveSeat records a reservation of totalSeatsToAllocate seats for the account.
func (s *seatReservationService) ReserveSeat(ctx context.Context, accountID int64, totalSeatsToAllocate int) error {
	if accountID <= 0 {
		return fmt.Errorf("cannot reserve seats for account %d: account id must be positive", accountID)
	}
	if totalSeatsToAllocate < 0 {
		return fmt.Errorf("cannot reserve %d seats: seat count must not be negative", totalSeatsToAllocate)
	}

	reservation := &model.SeatReservation{
		ID:        uuid.New(),
		AccountID: accountID,
		Seats:     totalSeatsToAllocate,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, reservation); err != nil {
		s.logger.Error().
			Err(err).
			Int64("account_id", accountID).
			Int("seats", totalSeatsToAllocate).
			Msg("failed to reserve seats")
		return fmt.Errorf("failed to reserve seats: %w", err)
	}

	s.logger.Info().
		Str("reservation_id", reservation.ID.String()).
		Int64("account_id", accountID).
		Int("seats", totalSeatsToAllocate).
		Msg("seats reserved")

	return nil
}
