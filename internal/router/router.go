package router

import (
	"net/http"
	"strings"

	"cinema-tickets/internal/handler"
	"cinema-tickets/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	purchaseHandler *handler.PurchaseHandler,
	ticketTypeHandler *handler.TicketTypeHandler,
	accountHandler *handler.AccountHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("/api/ticket-types", ticketTypeHandler.List)

	// Register purchase routes (both with and without trailing slash)
	mux.HandleFunc("/api/purchases", purchaseHandler.Create)
	mux.HandleFunc("/api/purchases/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/purchases/" {
			http.NotFound(w, r)
			return
		}
		purchaseHandler.Create(w, r)
	})

	// Account routes: /api/accounts/{id}/activity
	mux.HandleFunc("/api/accounts/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/activity") {
			accountHandler.GetActivity(w, r)
			return
		}
		http.NotFound(w, r)
	})

	// Apply middleware in order: Recovery -> Logging -> RequestID -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.RequestID(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
