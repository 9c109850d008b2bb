package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"cinema-tickets/internal/model"
	"cinema-tickets/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// PurchaseHandler handles ticket purchase HTTP requests.
type PurchaseHandler struct {
	service  service.TicketService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(service service.TicketService, logger zerolog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		service:  service,
		validate: newValidator(),
		logger:   logger.With().Str("handler", "purchase").Logger(),
	}
}

// Create handles POST /api/purchases requests.
func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost, h.logger)
		return
	}

	var body model.PurchaseRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body: "+err.Error(), h.logger)
		return
	}

	if err := h.validate.Struct(body); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidTicketLine, validationMessage(err), h.logger)
		return
	}

	summary, err := h.service.PurchaseTickets(r.Context(), body.ToPurchaseRequest())
	if err != nil {
		h.writePurchaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, summary)
}

// writePurchaseError maps a purchase failure onto an HTTP status.
func (h *PurchaseHandler) writePurchaseError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *model.InvalidPurchaseError
	var domainErr *model.DomainError

	switch {
	case errors.As(err, &invalid):
		writeError(w, r, http.StatusBadRequest, invalid.Code(), invalid.Reason(), h.logger)
	case errors.Is(err, model.ErrUnknownAccount):
		writeError(w, r, http.StatusUnprocessableEntity, model.ErrCodeUnknownAccount, model.ErrUnknownAccount.Message, h.logger)
	case errors.As(err, &domainErr):
		writeError(w, r, http.StatusBadRequest, domainErr.Code, domainErr.Message, h.logger)
	default:
		h.logger.Error().Err(err).Msg("purchase failed")
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to complete purchase", h.logger)
	}
}
