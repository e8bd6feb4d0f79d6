package usecase

import (
	"context"
	"testing"

	"cinema-wizard/internal/data/entity"
	"cinema-wizard/internal/data/gateway"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestLogger(t *testing.T) *zap.Logger {
	t.Helper()
	return zap.NewNop()
}

type mockMovieCatalog struct{ mock.Mock }

func (m *mockMovieCatalog) GetAll(ctx context.Context) ([]*entity.Movie, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Movie), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieCatalog) GetByID(ctx context.Context, id string) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Movie), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieCatalog) Search(ctx context.Context, query string) ([]*entity.Movie, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Movie), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCinemaDirectory struct{ mock.Mock }

func (m *mockCinemaDirectory) GetAll(ctx context.Context) ([]*entity.Cinema, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Cinema), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCinemaDirectory) GetByID(ctx context.Context, id string) (*entity.Cinema, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Cinema), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockShowtimeDirectory struct{ mock.Mock }

func (m *mockShowtimeDirectory) GetByID(ctx context.Context, id string) (*entity.Showtime, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Showtime), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShowtimeDirectory) GetByMovieID(ctx context.Context, movieID string) ([]*entity.Showtime, error) {
	args := m.Called(ctx, movieID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Showtime), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShowtimeDirectory) GetByMovieAndCinema(ctx context.Context, movieID, cinemaID string) ([]*entity.Showtime, error) {
	args := m.Called(ctx, movieID, cinemaID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Showtime), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSeatInventory struct{ mock.Mock }

func (m *mockSeatInventory) GetByShowtimeID(ctx context.Context, showtimeID string) ([]*entity.Seat, error) {
	args := m.Called(ctx, showtimeID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Seat), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSeatInventory) MarkUnavailable(ctx context.Context, seatID string) error {
	return m.Called(ctx, seatID).Error(0)
}

func (m *mockSeatInventory) MarkUnavailableBatch(ctx context.Context, seatIDs []string) *gateway.SeatMarkResult {
	args := m.Called(ctx, seatIDs)
	return args.Get(0).(*gateway.SeatMarkResult)
}

type mockBookingLedger struct{ mock.Mock }

func (m *mockBookingLedger) Create(ctx context.Context, req *entity.BookingRequest) (*entity.Booking, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*entity.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingLedger) GetByUserID(ctx context.Context, userID string) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}
