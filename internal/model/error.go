package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeInvalidTicketLine  = "INVALID_TICKET_LINE"
	ErrCodeInvalidAccountID   = "INVALID_ACCOUNT_ID"
	ErrCodeInvalidQuery       = "INVALID_QUERY"
	ErrCodeUnknownAccount     = "UNKNOWN_ACCOUNT"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeAccountIDMissing   = "ACCOUNT_ID_MISSING"
	ErrCodeAccountIDNotPos    = "ACCOUNT_ID_NOT_POSITIVE"
	ErrCodeEmptyTicketRequest = "EMPTY_TICKET_REQUEST"
	ErrCodeInfantOnly         = "INFANT_ONLY"
	ErrCodeChildOnly          = "CHILD_ONLY"
	ErrCodeAdultRequired      = "ADULT_REQUIRED"
	ErrCodeMaxTicketsExceeded = "MAX_TICKETS_EXCEEDED"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// InvalidPurchaseError is returned when a purchase request breaks a
// purchasing rule. Its fields are fixed at construction.
type InvalidPurchaseError struct {
	code   string
	reason string
}

func (e *InvalidPurchaseError) Error() string {
	return e.reason
}

// Code returns the machine-readable error code.
func (e *InvalidPurchaseError) Code() string {
	return e.code
}

// Reason returns the human-readable explanation.
func (e *InvalidPurchaseError) Reason() string {
	return e.reason
}

// NewInvalidPurchaseError creates a new invalid purchase error.
func NewInvalidPurchaseError(code, reason string) *InvalidPurchaseError {
	return &InvalidPurchaseError{
		code:   code,
		reason: reason,
	}
}

// IsInvalidPurchase reports whether err is, or wraps, an InvalidPurchaseError.
func IsInvalidPurchase(err error) bool {
	var target *InvalidPurchaseError
	return errors.As(err, &target)
}

// Purchase rule violations, in the order they are checked.
var (
	ErrAccountIDMissing     = NewInvalidPurchaseError(ErrCodeAccountIDMissing, "Account ID is null, Invalid account id provided")
	ErrAccountIDNotPositive = NewInvalidPurchaseError(ErrCodeAccountIDNotPos, "Account ID is less than or equal to zero, Invalid account id provided")
	ErrEmptyTicketRequest   = NewInvalidPurchaseError(ErrCodeEmptyTicketRequest, "Invalid ticket request")
	ErrInfantOnly           = NewInvalidPurchaseError(ErrCodeInfantOnly, "Invalid ticket request, Type of request is Infant alone")
	ErrChildOnly            = NewInvalidPurchaseError(ErrCodeChildOnly, "Invalid ticket request, Type of request is child alone")
	ErrAdultRequired        = NewInvalidPurchaseError(ErrCodeAdultRequired, "Please add atleast one adult")
	ErrMaxTicketsExceeded   = NewInvalidPurchaseError(ErrCodeMaxTicketsExceeded, "Maximum ticket count exceeded")
)

// Common domain errors
var (
	ErrUnknownAccount   = NewDomainError(ErrCodeUnknownAccount, "Account is not registered with the payment gateway")
	ErrInvalidAccountID = NewDomainError(ErrCodeInvalidAccountID, "Account ID must be a positive integer")
)
