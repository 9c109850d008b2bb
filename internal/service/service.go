package service

import (
	"context"

	"cinema-tickets/internal/model"
)

// TicketService defines the ticket purchasing operation.
type TicketService interface {
	// PurchaseTickets validates and prices the request, reserves the seats
	// and then takes payment. Rule violations are returned as
	// *model.InvalidPurchaseError; collaborator errors are returned unchanged.
	PurchaseTickets(ctx context.Context, req *model.PurchaseRequest) (*model.PurchaseSummary, error)

	// TicketTypes returns the ticket types on sale and their prices.
	TicketTypes() []model.TicketTypeResponse
}

// AccountService defines read operations over an account's purchase history.
type AccountService interface {
	// GetActivity retrieves the reservations and payments of an account with pagination.
	GetActivity(ctx context.Context, accountID int64, limit, offset int) (*model.AccountActivity, error)
}
