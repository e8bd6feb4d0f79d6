package wire

import (
	"cinema-wizard/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCinema(r chi.Router, cinemaHandler *adaptor.CinemaHandler) {
	// GET /api/cinemas - list cinemas (public)
	r.Get("/api/cinemas", cinemaHandler.GetCinemas)

	// GET /api/showtimes/{id}/seats - seat map with wizard prices
	r.Get("/api/showtimes/{id}/seats", cinemaHandler.GetSeats)
}
