package repository

import (
	"context"

	"cinema-tickets/internal/model"
)

// ReservationRepository defines the interface for seat reservation data access operations.
type ReservationRepository interface {
	// Create inserts a new seat reservation.
	Create(ctx context.Context, reservation *model.SeatReservation) error

	// ListByAccount retrieves the reservations of an account, newest first, with pagination support.
	ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]model.SeatReservation, error)
}

// PaymentRepository defines the interface for payment data access operations.
type PaymentRepository interface {
	// Create inserts a new payment.
	Create(ctx context.Context, payment *model.Payment) error

	// ListByAccount retrieves the payments of an account, newest first, with pagination support.
	ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]model.Payment, error)
}
