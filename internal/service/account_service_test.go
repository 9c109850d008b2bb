package service

import (
	"context"
	"errors"
	"testing"
	"time"

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

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]model.Payment, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

func TestAccountService_GetActivity(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	reservations := []model.SeatReservation{
		{ID: uuid.New(), AccountID: 100, Seats: 3, CreatedAt: time.Now()},
	}
	payments := []model.Payment{
		{ID: uuid.New(), AccountID: 100, Amount: 50, CreatedAt: time.Now()},
	}

	tests := []struct {
		name           string
		limit          int
		offset         int
		expectedLimit  int
		expectedOffset int
	}{
		{name: "Valid pagination", limit: 10, offset: 0, expectedLimit: 10, expectedOffset: 0},
		{name: "Zero limit defaults to 10", limit: 0, offset: 5, expectedLimit: 10, expectedOffset: 5},
		{name: "Negative limit defaults to 10", limit: -5, offset: 0, expectedLimit: 10, expectedOffset: 0},
		{name: "Limit exceeding max caps at 100", limit: 500, offset: 0, expectedLimit: 100, expectedOffset: 0},
		{name: "Negative offset defaults to 0", limit: 10, offset: -10, expectedLimit: 10, expectedOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReservations := new(MockReservationRepository)
			mockPayments := new(MockPaymentRepository)
			service := NewAccountService(mockReservations, mockPayments, logger)

			mockReservations.On("ListByAccount", ctx, int64(100), tt.expectedLimit, tt.expectedOffset).Return(reservations, nil)
			mockPayments.On("ListByAccount", ctx, int64(100), tt.expectedLimit, tt.expectedOffset).Return(payments, nil)

			activity, err := service.GetActivity(ctx, 100, tt.limit, tt.offset)

			require.NoError(t, err)
			require.NotNil(t, activity)
			assert.Equal(t, int64(100), activity.AccountID)
			assert.Equal(t, reservations, activity.Reservations)
			assert.Equal(t, payments, activity.Payments)

			mockReservations.AssertExpectations(t)
			mockPayments.AssertExpectations(t)
		})
	}
}

func TestAccountService_GetActivity_InvalidAccount(t *testing.T) {
	mockReservations := new(MockReservationRepository)
	mockPayments := new(MockPaymentRepository)
	service := NewAccountService(mockReservations, mockPayments, zerolog.Nop())

	for _, id := range []int64{0, -3} {
		activity, err := service.GetActivity(context.Background(), id, 10, 0)

		require.Error(t, err)
		assert.Nil(t, activity)
		assert.Equal(t, model.ErrInvalidAccountID, err)
		assert.False(t, model.IsInvalidPurchase(err))
	}

	mockReservations.AssertNumberOfCalls(t, "ListByAccount", 0)
	mockPayments.AssertNumberOfCalls(t, "ListByAccount", 0)
}

func TestAccountService_GetActivity_RepositoryErrors(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Reservation repository error", func(t *testing.T) {
		mockReservations := new(MockReservationRepository)
		mockPayments := new(MockPaymentRepository)
		service := NewAccountService(mockReservations, mockPayments, logger)

		mockReservations.On("ListByAccount", ctx, int64(1), 10, 0).Return(nil, errors.New("database error"))

		activity, err := service.GetActivity(ctx, 1, 10, 0)

		require.Error(t, err)
		assert.Nil(t, activity)
		assert.Contains(t, err.Error(), "failed to get reservations")
		mockPayments.AssertNumberOfCalls(t, "ListByAccount", 0)
	})

	t.Run("Payment repository error", func(t *testing.T) {
		mockReservations := new(MockReservationRepository)
		mockPayments := new(MockPaymentRepository)
		service := NewAccountService(mockReservations, mockPayments, logger)

		mockReservations.On("ListByAccount", ctx, int64(1), 10, 0).Return([]model.SeatReservation{}, nil)
		mockPayments.On("ListByAccount", ctx, int64(1), 10, 0).Return(nil, errors.New("database error"))

		activity, err := service.GetActivity(ctx, 1, 10, 0)

		require.Error(t, err)
		assert.Nil(t, activity)
		assert.Contains(t, err.Error(), "failed to get payments")
	})
}
