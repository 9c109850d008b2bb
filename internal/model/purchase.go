package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseRequest is a single purchase attempt for an account.
// A nil AccountID means the account was not supplied.
type PurchaseRequest struct {
	AccountID          *int64
	TicketTypeRequests []TicketTypeRequest
}

// PurchaseSummary describes a completed purchase.
type PurchaseSummary struct {
	AccountID     int64              `json:"accountId"`
	SeatsReserved int                `json:"seatsReserved"`
	AmountPaid    int                `json:"amountPaid"`
	Tickets       map[TicketType]int `json:"tickets"`
}

// PurchaseRequestBody is the JSON payload for POST /api/purchases.
type PurchaseRequestBody struct {
	AccountID          *int64                  `json:"accountId"`
	TicketTypeRequests []TicketTypeRequestBody `json:"ticketTypeRequests" validate:"dive"`
}

// TicketTypeRequestBody is a single line of a purchase payload.
type TicketTypeRequestBody struct {
	Type        TicketType `json:"type" validate:"ticket_type"`
	NoOfTickets int        `json:"noOfTickets" validate:"gte=1,lte=1000"`
}

// ToPurchaseRequest converts the payload into a PurchaseRequest.
func (b *PurchaseRequestBody) ToPurchaseRequest() *PurchaseRequest {
	lines := make([]TicketTypeRequest, len(b.TicketTypeRequests))
	for i, line := range b.TicketTypeRequests {
		lines[i] = NewTicketTypeRequest(line.Type, line.NoOfTickets)
	}
	return &PurchaseRequest{
		AccountID:          b.AccountID,
		TicketTypeRequests: lines,
	}
}

// SeatReservation records seats held for an account.
type SeatReservation struct {
	ID        uuid.UUID `json:"id" db:"id"`
	AccountID int64     `json:"accountId" db:"account_id"`
	Seats     int       `json:"seats" db:"seats"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Payment records an amount charged to an account.
type Payment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	AccountID int64     `json:"accountId" db:"account_id"`
	Amount    int       `json:"amount" db:"amount"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// AccountActivity lists the reservations and payments made by an account.
type AccountActivity struct {
	AccountID    int64             `json:"accountId"`
	Reservations []SeatReservation `json:"reservations"`
	Payments     []Payment         `json:"payments"`
}
