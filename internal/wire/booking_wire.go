package wire

import (
	"cinema-wizard/internal/adaptor"
	"cinema-wizard/internal/data/gateway"
	"cinema-wizard/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	gw *gateway.Gateway,
	log *zap.Logger,
) {
	// GET /api/user/bookings - booking history for the logged-in user
	r.With(middleware.Auth(gw.Identity, log)).
		Get("/api/user/bookings", bookingHandler.GetUserBookings)
}
