package model

import (
	"fmt"
)

// TicketType identifies a ticket category. The zero value is not a valid type.
type TicketType int

const (
	TicketTypeAdult TicketType = iota + 1
	TicketTypeChild
	TicketTypeInfant
)

// ticketTypeInfo holds the fixed attributes of a ticket type.
type ticketTypeInfo struct {
	name         string
	price        int
	occupiesSeat bool
}

// ticketTypes is the price table. Infants sit on an adult's lap, so they
// neither pay nor take a seat.
var ticketTypes = map[TicketType]ticketTypeInfo{
	TicketTypeAdult:  {name: "ADULT", price: 20, occupiesSeat: true},
	TicketTypeChild:  {name: "CHILD", price: 10, occupiesSeat: true},
	TicketTypeInfant: {name: "INFANT", price: 0, occupiesSeat: false},
}

// AllTicketTypes returns every ticket type in declaration order.
func AllTicketTypes() []TicketType {
	return []TicketType{TicketTypeAdult, TicketTypeChild, TicketTypeInfant}
}

// ParseTicketType converts a name such as "ADULT" into a TicketType.
func ParseTicketType(name string) (TicketType, error) {
	for t, info := range ticketTypes {
		if info.name == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown ticket type %q", name)
}

// IsValid reports whether t is one of the declared ticket types.
func (t TicketType) IsValid() bool {
	_, ok := ticketTypes[t]
	return ok
}

// Price returns the unit price of the ticket type.
func (t TicketType) Price() int {
	return ticketTypes[t].price
}

// OccupiesSeat reports whether a ticket of this type needs its own seat.
func (t TicketType) OccupiesSeat() bool {
	return ticketTypes[t].occupiesSeat
}

func (t TicketType) String() string {
	if info, ok := ticketTypes[t]; ok {
		return info.name
	}
	return fmt.Sprintf("TicketType(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t TicketType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid ticket type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TicketType) UnmarshalText(text []byte) error {
	parsed, err := ParseTicketType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TicketTypeRequest is an immutable request for a number of tickets of one type.
type TicketTypeRequest struct {
	ticketType  TicketType
	noOfTickets int
}

// NewTicketTypeRequest creates a ticket type request.
func NewTicketTypeRequest(ticketType TicketType, noOfTickets int) TicketTypeRequest {
	return TicketTypeRequest{
		ticketType:  ticketType,
		noOfTickets: noOfTickets,
	}
}

// TicketType returns the requested ticket type.
func (r TicketTypeRequest) TicketType() TicketType {
	return r.ticketType
}

// NoOfTickets returns the number of tickets requested.
func (r TicketTypeRequest) NoOfTickets() int {
	return r.noOfTickets
}

// TicketTypeResponse describes a ticket type and its price.
type TicketTypeResponse struct {
	Type         TicketType `json:"type"`
	Price        int        `json:"price"`
	OccupiesSeat bool       `json:"occupiesSeat"`
}
