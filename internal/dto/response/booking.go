package response

import (
	"time"

	"cinema-wizard/internal/data/entity"
	"cinema-wizard/internal/data/gateway"
	"cinema-wizard/pkg/utils"
)

type BookingResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ShowtimeID  string    `json:"showtime_id"`
	SeatIDs     []string  `json:"seat_ids"`
	TotalPrice  float64   `json:"total_price"`
	Display     string    `json:"total_price_display"`
	BookingDate time.Time `json:"booking_date"`
	Status      string    `json:"status"`

	// Seat ids whose post-booking availability update failed. The
	// booking itself stands; these are reconciled out of band.
	UnmarkedSeatIDs []string `json:"unmarked_seat_ids,omitempty"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking, marks *gateway.SeatMarkResult) BookingResponse {
	resp := BookingResponse{
		ID:          booking.ID,
		UserID:      booking.UserID,
		ShowtimeID:  booking.ShowtimeID,
		SeatIDs:     booking.SeatIDs,
		TotalPrice:  booking.TotalPrice,
		Display:     utils.FormatPrice(booking.TotalPrice),
		BookingDate: booking.BookingDate,
		Status:      string(booking.Status),
	}
	if marks != nil {
		resp.UnmarkedSeatIDs = marks.Failed
	}
	return resp
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		out[i] = BookingToResponse(booking, nil)
	}
	return out
}
