package service

import (
	"context"
	"math"

	"cinema-tickets/internal/model"
	"cinema-tickets/internal/paymentgateway"
	"cinema-tickets/internal/seatbooking"

	"github.com/rs/zerolog"
)

// MaxTicketsPerPurchase is the maximum number of seats a single purchase may allocate.
const MaxTicketsPerPurchase = 20

// ticketCounts holds the number of tickets requested per type, summed across lines.
type ticketCounts map[model.TicketType]int

// ticketService implements TicketService.
type ticketService struct {
	seatReservation seatbooking.SeatReservationService
	ticketPayment   paymentgateway.TicketPaymentService
	logger          zerolog.Logger
}

// NewTicketService creates a new ticket service.
func NewTicketService(
	seatReservation seatbooking.SeatReservationService,
	ticketPayment paymentgateway.TicketPaymentService,
	logger zerolog.Logger,
) TicketService {
	return &ticketService{
		seatReservation: seatReservation,
		ticketPayment:   ticketPayment,
		logger:          logger.With().Str("service", "ticket").Logger(),
	}
}

// PurchaseTickets validates and prices the request, then reserves seats and takes payment.
func (s *ticketService) PurchaseTickets(ctx context.Context, req *model.PurchaseRequest) (*model.PurchaseSummary, error) {
	counts, err := s.validatePurchaseRequest(req)
	if err != nil {
		return nil, err
	}

	accountID := *req.AccountID

	totalSeatsToAllocate := counts.totalSeats()
	s.logger.Debug().
		Int64("account_id", accountID).
		Int("total_seats", totalSeatsToAllocate).
		Msg("total seats requested")

	if totalSeatsToAllocate > MaxTicketsPerPurchase {
		s.rejected(accountID, model.ErrMaxTicketsExceeded)
		return nil, model.ErrMaxTicketsExceeded
	}

	totalAmountToPay := counts.totalAmount()
	s.logger.Debug().
		Int64("account_id", accountID).
		Int("total_amount", totalAmountToPay).
		Msg("total amount to pay")

	// Seats are held before the account is charged.
	if err := s.seatReservation.ReserveSeat(ctx, accountID, totalSeatsToAllocate); err != nil {
		s.logger.Error().Err(err).Int64("account_id", accountID).Msg("seat reservation failed")
		return nil, err
	}

	if err := s.ticketPayment.MakePayment(ctx, accountID, totalAmountToPay); err != nil {
		s.logger.Error().Err(err).Int64("account_id", accountID).Msg("payment failed")
		return nil, err
	}

	s.logger.Info().
		Int64("account_id", accountID).
		Int("seats_reserved", totalSeatsToAllocate).
		Int("amount_paid", totalAmountToPay).
		Msg("tickets purchased successfully")

	return &model.PurchaseSummary{
		AccountID:     accountID,
		SeatsReserved: totalSeatsToAllocate,
		AmountPaid:    totalAmountToPay,
		Tickets:       counts,
	}, nil
}

// TicketTypes returns the ticket types on sale and their prices.
func (s *ticketService) TicketTypes() []model.TicketTypeResponse {
	types := model.AllTicketTypes()
	resp := make([]model.TicketTypeResponse, len(types))
	for i, t := range types {
		resp[i] = model.TicketTypeResponse{
			Type:         t,
			Price:        t.Price(),
			OccupiesSeat: t.OccupiesSeat(),
		}
	}
	return resp
}

// validatePurchaseRequest applies the purchasing rules in order and returns the
// aggregated ticket counts. The first rule broken decides the error.
func (s *ticketService) validatePurchaseRequest(req *model.PurchaseRequest) (ticketCounts, error) {
	if req == nil || req.AccountID == nil {
		s.logger.Warn().Str("code", model.ErrAccountIDMissing.Code()).Msg(model.ErrAccountIDMissing.Reason())
		return nil, model.ErrAccountIDMissing
	}

	accountID := *req.AccountID
	if accountID <= 0 {
		s.rejected(accountID, model.ErrAccountIDNotPositive)
		return nil, model.ErrAccountIDNotPositive
	}

	lines := req.TicketTypeRequests
	if len(lines) == 0 {
		s.rejected(accountID, model.ErrEmptyTicketRequest)
		return nil, model.ErrEmptyTicketRequest
	}

	counts := aggregate(lines)

	// These two rules look at the number of lines, not the number of tickets.
	if len(lines) == 1 && counts.has(model.TicketTypeInfant) {
		s.rejected(accountID, model.ErrInfantOnly)
		return nil, model.ErrInfantOnly
	}

	if len(lines) == 1 && counts.has(model.TicketTypeChild) {
		s.rejected(accountID, model.ErrChildOnly)
		return nil, model.ErrChildOnly
	}

	if (counts.has(model.TicketTypeInfant) || counts.has(model.TicketTypeChild)) &&
		counts[model.TicketTypeAdult] <= 0 {
		s.rejected(accountID, model.ErrAdultRequired)
		return nil, model.ErrAdultRequired
	}

	return counts, nil
}

// rejected logs a purchase rule violation.
func (s *ticketService) rejected(accountID int64, err *model.InvalidPurchaseError) {
	s.logger.Warn().
		Int64("account_id", accountID).
		Str("code", err.Code()).
		Msg(err.Reason())
}

// aggregate sums the requested tickets per type. Repeated types are added
// together rather than overwritten.
func aggregate(lines []model.TicketTypeRequest) ticketCounts {
	counts := make(ticketCounts, len(lines))
	for _, line := range lines {
		counts[line.TicketType()] = addCapped(counts[line.TicketType()], line.NoOfTickets())
	}
	return counts
}

// has reports whether any line requested the given type.
func (c ticketCounts) has(t model.TicketType) bool {
	_, ok := c[t]
	return ok
}

// totalSeats counts the tickets that need a seat of their own. Counting stops
// once the total passes MaxTicketsPerPurchase.
func (c ticketCounts) totalSeats() int {
	total := 0
	for _, t := range model.AllTicketTypes() {
		if !t.OccupiesSeat() {
			continue
		}
		total = addCapped(total, c[t])
		if total > MaxTicketsPerPurchase {
			return total
		}
	}
	return total
}

// totalAmount prices the request. Free tickets contribute nothing.
func (c ticketCounts) totalAmount() int {
	total := 0
	for _, t := range model.AllTicketTypes() {
		if t.Price() != 0 {
			total += t.Price() * c[t]
		}
	}
	return total
}

// addCapped adds two counts, saturating at the int limits instead of wrapping.
func addCapped(a, b int) int {
	sum := a + b
	switch {
	case a > 0 && b > 0 && sum < 0:
		return math.MaxInt
	case a < 0 && b < 0 && sum >= 0:
		return math.MinInt
	}
	return sum
}
