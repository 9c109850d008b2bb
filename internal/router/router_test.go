package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema-tickets/internal/handler"
	"cinema-tickets/internal/middleware"
	"cinema-tickets/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "router-test-key"

type mockTicketService struct {
	mock.Mock
}

func (m *mockTicketService) PurchaseTickets(ctx context.Context, req *model.PurchaseRequest) (*model.PurchaseSummary, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PurchaseSummary), args.Error(1)
}

func (m *mockTicketService) TicketTypes() []model.TicketTypeResponse {
	args := m.Called()
	return args.Get(0).([]model.TicketTypeResponse)
}

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) GetActivity(ctx context.Context, accountID int64, limit, offset int) (*model.AccountActivity, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccountActivity), args.Error(1)
}

func newTestRouter(tickets *mockTicketService, accounts *mockAccountService) http.Handler {
	logger := zerolog.Nop()
	return New(
		handler.NewPurchaseHandler(tickets, logger),
		handler.NewTicketTypeHandler(tickets, logger),
		handler.NewAccountHandler(accounts, logger),
		testAPIKey,
		logger,
	)
}

func TestRouter_Routes(t *testing.T) {
	tickets := new(mockTicketService)
	accounts := new(mockAccountService)

	tickets.On("TicketTypes").Return([]model.TicketTypeResponse{
		{Type: model.TicketTypeAdult, Price: 20, OccupiesSeat: true},
	})
	tickets.On("PurchaseTickets", mock.Anything, mock.Anything).Return(&model.PurchaseSummary{
		AccountID:     1,
		SeatsReserved: 1,
		AmountPaid:    20,
		Tickets:       map[model.TicketType]int{model.TicketTypeAdult: 1},
	}, nil)
	accounts.On("GetActivity", mock.Anything, int64(1), 10, 0).Return(&model.AccountActivity{AccountID: 1}, nil)

	router := newTestRouter(tickets, accounts)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		apiKey         string
		expectedStatus int
	}{
		{
			name:           "Health without API key",
			method:         http.MethodGet,
			path:           "/health",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Ticket types",
			method:         http.MethodGet,
			path:           "/api/ticket-types",
			apiKey:         testAPIKey,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Purchase",
			method:         http.MethodPost,
			path:           "/api/purchases",
			body:           `{"accountId":1,"ticketTypeRequests":[{"type":"ADULT","noOfTickets":1}]}`,
			apiKey:         testAPIKey,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Purchase with trailing slash",
			method:         http.MethodPost,
			path:           "/api/purchases/",
			body:           `{"accountId":1,"ticketTypeRequests":[{"type":"ADULT","noOfTickets":1}]}`,
			apiKey:         testAPIKey,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Purchase sub-path not found",
			method:         http.MethodPost,
			path:           "/api/purchases/123",
			apiKey:         testAPIKey,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Account activity",
			method:         http.MethodGet,
			path:           "/api/accounts/1/activity",
			apiKey:         testAPIKey,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown account path",
			method:         http.MethodGet,
			path:           "/api/accounts/1",
			apiKey:         testAPIKey,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Missing API key",
			method:         http.MethodGet,
			path:           "/api/ticket-types",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Preflight",
			method:         http.MethodOptions,
			path:           "/api/purchases",
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.CorrelationIDHeader))
		})
	}
}

func TestRouter_ErrorCarriesCorrelationID(t *testing.T) {
	tickets := new(mockTicketService)
	tickets.On("PurchaseTickets", mock.Anything, mock.Anything).Return(nil, model.ErrChildOnly)

	router := newTestRouter(tickets, new(mockAccountService))

	req := httptest.NewRequest(http.MethodPost, "/api/purchases",
		bytes.NewBufferString(`{"accountId":1,"ticketTypeRequests":[{"type":"CHILD","noOfTickets":2}]}`))
	req.Header.Set("X-API-Key", testAPIKey)
	req.Header.Set(middleware.CorrelationIDHeader, "abc-123")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get(middleware.CorrelationIDHeader))

	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, model.ErrCodeChildOnly, resp.Error)
	assert.Equal(t, "Invalid ticket request, Type of request is child alone", resp.Message)
	assert.Equal(t, "abc-123", resp.CorrelationID)
}
