package service

import (
	"context"
	"fmt"

	"cinema-tickets/internal/model"
	"cinema-tickets/internal/repository"

	"github.com/rs/zerolog"
)

// accountService implements AccountService.
type accountService struct {
	reservationRepo repository.ReservationRepository
	paymentRepo     repository.PaymentRepository
	logger          zerolog.Logger
}

// NewAccountService creates a new account service.
func NewAccountService(
	reservationRepo repository.ReservationRepository,
	paymentRepo repository.PaymentRepository,
	logger zerolog.Logger,
) AccountService {
	return &accountService{
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		logger:          logger.With().Str("service", "account").Logger(),
	}
}

// GetActivity retrieves the reservations and payments of an account with pagination.
func (s *accountService) GetActivity(ctx context.Context, accountID int64, limit, offset int) (*model.AccountActivity, error) {
	if accountID <= 0 {
		s.logger.Warn().Int64("account_id", accountID).Msg("invalid account ID")
		return nil, model.ErrInvalidAccountID
	}

	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	reservations, err := s.reservationRepo.ListByAccount(ctx, accountID, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int64("account_id", accountID).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to get reservations")
		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}

	payments, err := s.paymentRepo.ListByAccount(ctx, accountID, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int64("account_id", accountID).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to get payments")
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	s.logger.Debug().
		Int64("account_id", accountID).
		Int("reservations", len(reservations)).
		Int("payments", len(payments)).
		Msg("retrieved account activity")

	return &model.AccountActivity{
		AccountID:    accountID,
		Reservations: reservations,
		Payments:     payments,
	}, nil
}
