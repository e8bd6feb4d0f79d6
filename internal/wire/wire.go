// internal/wire/wire.go
package wire

import (
	"net/http"

	"cinema-wizard/internal/adaptor"
	"cinema-wizard/internal/data/gateway"
	"cinema-wizard/internal/session"
	"cinema-wizard/internal/usecase"
	"cinema-wizard/pkg/middleware"
	"cinema-wizard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired dependencies.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router.
func Wiring(gw *gateway.Gateway, sessions *session.Manager, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(gw, sessions, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, gw, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	gw *gateway.Gateway,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	// Apply routes
	wireWizard(r, handler.Wizard, gw, logger)
	wireMovie(r, handler.Movie)
	wireCinema(r, handler.Cinema)
	wireBooking(r, handler.Booking, gw, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
