package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-wizard/internal/dto/request"
	"cinema-wizard/internal/usecase"
	"cinema-wizard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WizardHandler struct {
	service usecase.WizardService
	log     *zap.Logger
}

func NewWizardHandler(service usecase.WizardService, log *zap.Logger) *WizardHandler {
	return &WizardHandler{
		service: service,
		log:     log.With(zap.String("handler", "wizard")),
	}
}

// StartSession handles POST /api/wizard
func (h *WizardHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.StartSession(r.Context())
	if err != nil {
		writeServiceError(h.log, w, err, "start session")
		return
	}

	utils.ResponseCreated(w, "Session started", sess)
}

// GetSession handles GET /api/wizard/{id}
func (h *WizardHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		utils.ResponseBadRequest(w, "Session ID is required", nil)
		return
	}

	sess, err := h.service.GetSession(r.Context(), sessionID)
	if err != nil {
		writeServiceError(h.log, w, err, "get session")
		return
	}

	utils.ResponseSuccess(w, "Session retrieved successfully", sess)
}

// SelectMovie handles POST /api/wizard/{id}/movie
func (h *WizardHandler) SelectMovie(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req request.SelectMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	sess, err := h.service.SelectMovie(r.Context(), sessionID, &req)
	if err != nil {
		writeServiceError(h.log, w, err, "select movie")
		return
	}

	utils.ResponseSuccess(w, "Movie selected", sess)
}

// SelectCinema handles POST /api/wizard/{id}/cinema
func (h *WizardHandler) SelectCinema(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req request.SelectCinemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	sess, err := h.service.SelectCinema(r.Context(), sessionID, &req)
	if err != nil {
		writeServiceError(h.log, w, err, "select cinema")
		return
	}

	utils.ResponseSuccess(w, "Cinema selected", sess)
}

// SelectShowtime handles POST /api/wizard/{id}/showtime
func (h *WizardHandler) SelectShowtime(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req request.SelectShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	sess, err := h.service.SelectShowtime(r.Context(), sessionID, &req)
	if err != nil {
		writeServiceError(h.log, w, err, "select showtime")
		return
	}

	utils.ResponseSuccess(w, "Showtime selected", sess)
}

// ToggleSeat handles POST /api/wizard/{id}/seats/toggle
func (h *WizardHandler) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req request.ToggleSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	sess, err := h.service.ToggleSeat(r.Context(), sessionID, &req)
	if err != nil {
		writeServiceError(h.log, w, err, "toggle seat")
		return
	}

	utils.ResponseSuccess(w, "Seat selection updated", sess)
}

// Submit handles POST /api/wizard/{id}/submit (authenticated)
func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	booking, err := h.service.Submit(r.Context(), sessionID, user.ID)
	if err != nil {
		writeServiceError(h.log, w, err, "submit booking")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", booking)
}

// Cancel handles DELETE /api/wizard/{id}
func (h *WizardHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		utils.ResponseBadRequest(w, "Session ID is required", nil)
		return
	}

	if err := h.service.Cancel(r.Context(), sessionID); err != nil {
		writeServiceError(h.log, w, err, "cancel session")
		return
	}

	utils.ResponseSuccess(w, "Session cancelled", nil)
}
