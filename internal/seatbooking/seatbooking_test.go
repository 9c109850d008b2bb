package seatbooking

import (
	"context"
	"errors"
	"testing"

	"cinema-tickets/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReservationRepository is a mock implementation of ReservationRepository.
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, reservation *model.SeatReservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]model.SeatReservation, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SeatReservation), args.Error(1)
}

func TestSeatReservationService_ReserveSeat_Success(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockReservationRepository)
	service := NewSeatReservationService(mockRepo, zerolog.Nop())

	mockRepo.On("Create", ctx, mock.MatchedBy(func(r *model.SeatReservation) bool {
		return r.ID != uuid.Nil && r.AccountID == 100 && r.Seats == 3 && !r.CreatedAt.IsZero()
	})).Return(nil)

	err := service.ReserveSeat(ctx, 100, 3)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSeatReservationService_ReserveSeat_InvalidArguments(t *testing.T) {
	tests := []struct {
		name      string
		accountID int64
		seats     int
	}{
		{name: "Zero account ID", accountID: 0, seats: 1},
		{name: "Negative account ID", accountID: -1, seats: 1},
		{name: "Negative seat count", accountID: 1, seats: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockReservationRepository)
			service := NewSeatReservationService(mockRepo, zerolog.Nop())

			err := service.ReserveSeat(context.Background(), tt.accountID, tt.seats)

			require.Error(t, err)
			mockRepo.AssertNumberOfCalls(t, "Create", 0)
		})
	}
}

func TestSeatReservationService_ReserveSeat_RepositoryError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockReservationRepository)
	service := NewSeatReservationService(mockRepo, zerolog.Nop())

	dbErr := errors.New("database error")
	mockRepo.On("Create", ctx, mock.AnythingOfType("*model.SeatReservation")).Return(dbErr)

	err := service.ReserveSeat(ctx, 100, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "failed to reserve seats")
}
