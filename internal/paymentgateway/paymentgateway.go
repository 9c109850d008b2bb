package paymentgateway

import (
	"context"
	"fmt"
	"time"

	"cinema-tickets/internal/account"
	"cinema-tickets/internal/model"
	"cinema-tickets/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TicketPaymentService charges accounts for tickets.
type TicketPaymentService interface {
	// MakePayment charges totalAmountToPay to the account.
	MakePayment(ctx context.Context, accountID int64, totalAmountToPay int) error
}

// ticketPaymentService implements TicketPaymentService by recording each
// payment in the payment repository.
type ticketPaymentService struct {
	repo      repository.PaymentRepository
	directory account.Directory
	logger    zerolog.Logger
}

// NewTicketPaymentService creates a new repository-backed payment service.
// When directory is nil every account is accepted.
func NewTicketPaymentService(repo repository.PaymentRepository, directory account.Directory, logger zerolog.Logger) TicketPaymentService {
	return &ticketPaymentService{
		repo:      repo,
		directory: directory,
		logger:    logger.With().Str("component", "payment-gateway").Logger(),
	}
}

// MakePayment records a payment of totalAmountToPay for the account.
func (s *ticketPaymentService) MakePayment(ctx context.Context, accountID int64, totalAmountToPay int) error {
	if accountID <= 0 {
		return fmt.Errorf("cannot charge account %d: account id must be positive", accountID)
	}
	if totalAmountToPay < 0 {
		return fmt.Errorf("cannot charge %d: amount must not be negative", totalAmountToPay)
	}

	if s.directory != nil && !s.directory.Contains(ctx, accountID) {
		s.logger.Warn().Int64("account_id", accountID).Msg("payment refused for unknown account")
		return model.ErrUnknownAccount
	}

	payment := &model.Payment{
		ID:        uuid.New(),
		AccountID: accountID,
		Amount:    totalAmountToPay,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		s.logger.Error().
			Err(err).
			Int64("account_id", accountID).
			Int("amount", totalAmountToPay).
			Msg("failed to record payment")
		return fmt.Errorf("failed to make payment: %w", err)
	}

	s.logger.Info().
		Str("payment_id", payment.ID.String()).
		Int64("account_id", accountID).
		Int("amount", totalAmountToPay).
		Msg("payment taken")

	return nil
}
