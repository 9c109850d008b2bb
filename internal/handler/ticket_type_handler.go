package handler

import (
	"net/http"

	"cinema-tickets/internal/service"

	"github.com/rs/zerolog"
)

// TicketTypeHandler serves the ticket price table.
type TicketTypeHandler struct {
	service service.TicketService
	logger  zerolog.Logger
}

// NewTicketTypeHandler creates a new ticket type handler.
func NewTicketTypeHandler(service service.TicketService, logger zerolog.Logger) *TicketTypeHandler {
	return &TicketTypeHandler{
		service: service,
		logger:  logger.With().Str("handler", "ticket_type").Logger(),
	}
}

// List handles GET /api/ticket-types requests.
func (h *TicketTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.TicketTypes())
}
