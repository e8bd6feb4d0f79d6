package adaptor

import (
	"net/http"

	"cinema-wizard/internal/dto/request"
	"cinema-wizard/internal/usecase"
	"cinema-wizard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.CatalogService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	// Valid categories: all (default), now-playing, upcoming.
	category := query.Get("category")
	switch category {
	case "", "all", "now-playing", "upcoming":
	default:
		h.log.Warn("Invalid category filter, ignoring", zap.String("category", category))
		category = ""
	}

	movies, err := h.service.GetMovies(r.Context(), category, query.Get("q"), req)
	if err != nil {
		writeServiceError(h.log, w, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		writeServiceError(h.log, w, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// GetShowtimes handles GET /api/movies/{id}/showtimes?cinema_id=
func (h *MovieHandler) GetShowtimes(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	cinemaID := r.URL.Query().Get("cinema_id")

	showtimes, err := h.service.GetShowtimes(r.Context(), movieID, cinemaID)
	if err != nil {
		writeServiceError(h.log, w, err, "get showtimes")
		return
	}

	utils.ResponseSuccess(w, "Showtimes retrieved successfully", showtimes)
}
