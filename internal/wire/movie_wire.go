package wire

import (
	"cinema-wizard/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /api/movies - browse the catalog (public)
	r.Get("/api/movies", movieHandler.GetMovies)

	// GET /api/movies/{id} - movie details (public)
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)

	// GET /api/movies/{id}/showtimes - showtimes, optionally per cinema
	r.Get("/api/movies/{id}/showtimes", movieHandler.GetShowtimes)
}
