package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"cinema-tickets/internal/model"
	"cinema-tickets/internal/service"

	"github.com/rs/zerolog"
)

const (
	accountsPathPrefix  = "/api/accounts/"
	activityPathSuffix  = "/activity"
	defaultActivityPage = 10
)

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	service service.AccountService
	logger  zerolog.Logger
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(service service.AccountService, logger zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		logger:  logger.With().Str("handler", "account").Logger(),
	}
}

// GetActivity handles GET /api/accounts/{id}/activity requests with pagination.
func (h *AccountHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet, h.logger)
		return
	}

	// Expecting path: /api/accounts/{id}/activity
	path := r.URL.Path
	if !strings.HasPrefix(path, accountsPathPrefix) || !strings.HasSuffix(path, activityPathSuffix) {
		writeError(w, r, http.StatusNotFound, model.ErrCodeNotFound, "not found", h.logger)
		return
	}
	idStr := strings.TrimSuffix(strings.TrimPrefix(path, accountsPathPrefix), activityPathSuffix)

	accountID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || accountID <= 0 {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidAccountID, model.ErrInvalidAccountID.Message, h.logger)
		return
	}

	limit, ok := h.queryInt(w, r, "limit", defaultActivityPage)
	if !ok {
		return
	}
	offset, ok := h.queryInt(w, r, "offset", 0)
	if !ok {
		return
	}

	activity, err := h.service.GetActivity(r.Context(), accountID, limit, offset)
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			writeError(w, r, http.StatusBadRequest, domainErr.Code, domainErr.Message, h.logger)
			return
		}
		h.logger.Error().Err(err).Int64("account_id", accountID).Msg("failed to retrieve account activity")
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve account activity", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, activity)
}

// queryInt parses an optional integer query parameter, writing a 400 when it is malformed.
func (h *AccountHandler) queryInt(w http.ResponseWriter, r *http.Request, name string, defaultValue int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidQuery, "invalid "+name+" parameter", h.logger)
		return 0, false
	}
	return value, true
}
