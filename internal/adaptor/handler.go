package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"cinema-wizard/internal/data/gateway"
	"cinema-wizard/internal/session"
	"cinema-wizard/internal/usecase"
	"cinema-wizard/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Wizard  *WizardHandler
	Movie   *MovieHandler
	Cinema  *CinemaHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Wizard:  NewWizardHandler(service.Wizard, log),
		Movie:   NewMovieHandler(service.Catalog, log),
		Cinema:  NewCinemaHandler(service.Catalog, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// writeServiceError maps the error taxonomy coming out of the usecase
// layer onto HTTP statuses. Order guards and incomplete selections are
// the caller's fault (400), unknown resources are 404, a seat lost to
// another buyer is 409, and a collaborator outage is 502 so clients can
// distinguish "retry later" from "you did something wrong".
func writeServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, gateway.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, session.ErrNoMovieSelected),
		errors.Is(err, session.ErrNoCinemaSelected),
		errors.Is(err, session.ErrNoShowtimeSelected),
		errors.Is(err, session.ErrIncompleteSelection),
		errors.Is(err, session.ErrCancelNotAllowed),
		strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "is not for the selected"),
		strings.Contains(err.Error(), "is not at the selected"):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, session.ErrSeatUnavailable):
		log.Warn(operation+" failed - seat unavailable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, session.ErrCollaboratorUnavailable):
		log.Error(operation+" failed - collaborator unavailable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, "Upstream service unavailable, please retry")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
