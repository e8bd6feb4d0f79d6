package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-wizard/internal/data/entity"
	"cinema-wizard/internal/data/gateway"
	"cinema-wizard/internal/dto/request"
	"cinema-wizard/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBooking_GetUserBookings(t *testing.T) {
	ledger := &mockBookingLedger{}
	svc := NewBookingService(&gateway.Gateway{Bookings: ledger}, newTestLogger(t))

	var bookings []*entity.Booking
	for _, id := range []string{"b1", "b2", "b3"} {
		bookings = append(bookings, &entity.Booking{
			ID:          id,
			UserID:      "u1",
			ShowtimeID:  "s1",
			SeatIDs:     []string{"A1"},
			TotalPrice:  90000,
			BookingDate: time.Now(),
			Status:      entity.BookingStatusConfirmed,
		})
	}
	ledger.On("GetByUserID", mock.Anything, "u1").Return(bookings, nil)

	page, err := svc.GetUserBookings(context.Background(), "u1", &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "b1", page.Data[0].ID)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestBooking_GetUserBookings_LedgerDown(t *testing.T) {
	ledger := &mockBookingLedger{}
	svc := NewBookingService(&gateway.Gateway{Bookings: ledger}, newTestLogger(t))

	ledger.On("GetByUserID", mock.Anything, "u1").Return(nil, assert.AnError)

	_, err := svc.GetUserBookings(context.Background(), "u1", &request.PaginatedRequest{Page: 1, PerPage: 10})
	assert.ErrorIs(t, err, session.ErrCollaboratorUnavailable)
}
