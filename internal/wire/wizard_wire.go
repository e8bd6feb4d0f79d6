package wire

import (
	"cinema-wizard/internal/adaptor"
	"cinema-wizard/internal/data/gateway"
	"cinema-wizard/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWizard(
	r chi.Router,
	wizardHandler *adaptor.WizardHandler,
	gw *gateway.Gateway,
	log *zap.Logger,
) {
	r.Route("/api/wizard", func(r chi.Router) {
		// Anyone can walk the wizard; only submit needs a logged-in user.
		r.Post("/", wizardHandler.StartSession)
		r.Get("/{id}", wizardHandler.GetSession)
		r.Post("/{id}/movie", wizardHandler.SelectMovie)
		r.Post("/{id}/cinema", wizardHandler.SelectCinema)
		r.Post("/{id}/showtime", wizardHandler.SelectShowtime)
		r.Post("/{id}/seats/toggle", wizardHandler.ToggleSeat)
		r.Delete("/{id}", wizardHandler.Cancel)

		r.With(middleware.Auth(gw.Identity, log)).
			Post("/{id}/submit", wizardHandler.Submit)
	})
}
