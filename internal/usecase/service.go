package usecase

import (
	"errors"
	"fmt"

	"cinema-wizard/internal/data/gateway"
	"cinema-wizard/internal/session"
	"cinema-wizard/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Wizard  WizardService
	Catalog CatalogService
	Booking BookingService
}

func NewService(gw *gateway.Gateway, sessions *session.Manager, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Wizard:  NewWizardService(gw, sessions, log),
		Catalog: NewCatalogService(gw, log),
		Booking: NewBookingService(gw, log),
	}
}

// collaboratorErr folds a gateway failure into the wizard's taxonomy.
// Not-found and conflict keep their identity; everything else (network,
// timeout, 5xx) becomes a collaborator-unavailable failure.
func collaboratorErr(err error) error {
	if errors.Is(err, gateway.ErrNotFound) || errors.Is(err, gateway.ErrConflict) {
		return err
	}
	return fmt.Errorf("%w: %v", session.ErrCollaboratorUnavailable, err)
}
