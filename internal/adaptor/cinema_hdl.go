package adaptor

import (
	"net/http"

	"cinema-wizard/internal/usecase"
	"cinema-wizard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CinemaHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCinemaHandler(service usecase.CatalogService, log *zap.Logger) *CinemaHandler {
	return &CinemaHandler{
		service: service,
		log:     log.With(zap.String("handler", "cinema")),
	}
}

// GetCinemas handles GET /api/cinemas
func (h *CinemaHandler) GetCinemas(w http.ResponseWriter, r *http.Request) {
	cinemas, err := h.service.GetCinemas(r.Context())
	if err != nil {
		writeServiceError(h.log, w, err, "get cinemas")
		return
	}

	utils.ResponseSuccess(w, "Cinemas retrieved successfully", cinemas)
}

// GetSeats handles GET /api/showtimes/{id}/seats
func (h *CinemaHandler) GetSeats(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")
	if showtimeID == "" {
		utils.ResponseBadRequest(w, "Showtime ID is required", nil)
		return
	}

	seats, err := h.service.GetSeats(r.Context(), showtimeID)
	if err != nil {
		writeServiceError(h.log, w, err, "get seats")
		return
	}

	utils.ResponseSuccess(w, "Seats retrieved successfully", seats)
}
