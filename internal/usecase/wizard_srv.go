package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-wizard/internal/data/entity"
	"cinema-wizard/internal/data/gateway"
	"cinema-wizard/internal/dto/request"
	"cinema-wizard/internal/dto/response"
	"cinema-wizard/internal/pricing"
	"cinema-wizard/internal/session"
	"cinema-wizard/pkg/utils"

	"go.uber.org/zap"
)

// WizardService is the booking session lifecycle controller: it walks a
// session through movie -> cinema -> showtime -> seats -> submit,
// fetching reference data from the collaborators and translating their
// failures into the wizard taxonomy.
type WizardService interface {
	StartSession(ctx context.Context) (*response.SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*response.SessionResponse, error)
	SelectMovie(ctx context.Context, sessionID string, req *request.SelectMovieRequest) (*response.SessionResponse, error)
	SelectCinema(ctx context.Context, sessionID string, req *request.SelectCinemaRequest) (*response.SessionResponse, error)
	SelectShowtime(ctx context.Context, sessionID string, req *request.SelectShowtimeRequest) (*response.SessionResponse, error)
	ToggleSeat(ctx context.Context, sessionID string, req *request.ToggleSeatRequest) (*response.SessionResponse, error)
	Submit(ctx context.Context, sessionID, userID string) (*response.BookingResponse, error)
	Cancel(ctx context.Context, sessionID string) error
}

type wizardService struct {
	sessions *session.Manager
	gw       *gateway.Gateway
	log      *zap.Logger
}

func NewWizardService(gw *gateway.Gateway, sessions *session.Manager, log *zap.Logger) WizardService {
	return &wizardService{
		sessions: sessions,
		gw:       gw,
		log:      log.With(zap.String("service", "wizard")),
	}
}

func (s *wizardService) StartSession(ctx context.Context) (*response.SessionResponse, error) {
	id := s.sessions.Create()

	var resp *response.SessionResponse
	err := s.sessions.Do(id, func(sess *session.Session) error {
		resp = response.SessionToResponse(id, sess)
		return nil
	})
	return resp, err
}

func (s *wizardService) GetSession(ctx context.Context, sessionID string) (*response.SessionResponse, error) {
	var resp *response.SessionResponse
	err := s.sessions.Do(sessionID, func(sess *session.Session) error {
		resp = response.SessionToResponse(sessionID, sess)
		return nil
	})
	return resp, err
}

func (s *wizardService) SelectMovie(ctx context.Context, sessionID string, req *request.SelectMovieRequest) (*response.SessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movie, err := s.gw.Movies.GetByID(ctx, req.MovieID)
	if err != nil {
		return nil, collaboratorErr(err)
	}

	var resp *response.SessionResponse
	err = s.sessions.Do(sessionID, func(sess *session.Session) error {
		sess.SelectMovie(movie)
		resp = response.SessionToResponse(sessionID, sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Movie selected",
		zap.String("session_id", sessionID),
		zap.String("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)
	return resp, nil
}

func (s *wizardService) SelectCinema(ctx context.Context, sessionID string, req *request.SelectCinemaRequest) (*response.SessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	cinema, err := s.gw.Cinemas.GetByID(ctx, req.CinemaID)
	if err != nil {
		return nil, collaboratorErr(err)
	}

	var resp *response.SessionResponse
	err = s.sessions.Do(sessionID, func(sess *session.Session) error {
		if err := sess.SelectCinema(cinema); err != nil {
			return err
		}
		resp = response.SessionToResponse(sessionID, sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Cinema selected",
		zap.String("session_id", sessionID),
		zap.String("cinema_id", cinema.ID),
	)
	return resp, nil
}

func (s *wizardService) SelectShowtime(ctx context.Context, sessionID string, req *request.SelectShowtimeRequest) (*response.SessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	showtime, err := s.gw.Showtimes.GetByID(ctx, req.ShowtimeID)
	if err != nil {
		return nil, collaboratorErr(err)
	}

	var resp *response.SessionResponse
	err = s.sessions.Do(sessionID, func(sess *session.Session) error {
		// the showtime must screen the selected movie at the selected
		// cinema
		if movie := sess.Movie(); movie != nil && showtime.MovieID != movie.ID {
			return fmt.Errorf("showtime %s is not for the selected movie", showtime.ID)
		}
		if cinema := sess.Cinema(); cinema != nil && showtime.CinemaID != cinema.ID {
			return fmt.Errorf("showtime %s is not at the selected cinema", showtime.ID)
		}
		if err := sess.SelectShowtime(showtime); err != nil {
			return err
		}
		resp = response.SessionToResponse(sessionID, sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Showtime selected",
		zap.String("session_id", sessionID),
		zap.String("showtime_id", showtime.ID),
		zap.Float64("base_price", showtime.BasePrice),
	)
	return resp, nil
}

func (s *wizardService) ToggleSeat(ctx context.Context, sessionID string, req *request.ToggleSeatRequest) (*response.SessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var resp *response.SessionResponse
	err := s.sessions.Do(sessionID, func(sess *session.Session) error {
		showtime := sess.Showtime()
		if showtime == nil {
			return session.ErrNoShowtimeSelected
		}

		// deselecting never needs fresh inventory
		for _, selected := range sess.Seats() {
			if selected.ID == req.SeatID {
				if err := sess.ToggleSeat(selected); err != nil {
					return err
				}
				resp = response.SessionToResponse(sessionID, sess)
				return nil
			}
		}

		seats, err := s.gw.Seats.GetByShowtimeID(ctx, showtime.ID)
		if err != nil {
			return collaboratorErr(err)
		}

		seat := findSeat(seats, req.SeatID)
		if seat == nil {
			return fmt.Errorf("seat %s: %w", req.SeatID, gateway.ErrNotFound)
		}
		if !pricing.IsSelectable(seat) {
			return session.ErrSeatUnavailable
		}

		// the seat-level price is the one source of truth; checkout
		// only ever sums it
		seat.Price = pricing.PriceOf(seat.Type, showtime.BasePrice)

		if err := sess.ToggleSeat(seat); err != nil {
			return err
		}
		resp = response.SessionToResponse(sessionID, sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("Seat toggled",
		zap.String("session_id", sessionID),
		zap.String("seat_id", req.SeatID),
	)
	return resp, nil
}

func (s *wizardService) Submit(ctx context.Context, sessionID, userID string) (*response.BookingResponse, error) {
	var resp *response.BookingResponse
	err := s.sessions.Do(sessionID, func(sess *session.Session) error {
		if err := sess.BeginSubmit(); err != nil {
			return err
		}

		bookingReq := &entity.BookingRequest{
			UserID:      userID,
			ShowtimeID:  sess.Showtime().ID,
			SeatIDs:     sess.SeatIDs(),
			TotalPrice:  sess.TotalPrice(),
			BookingDate: time.Now().UTC(),
			Status:      entity.BookingStatusConfirmed,
		}

		booking, err := s.gw.Bookings.Create(ctx, bookingReq)
		if err != nil {
			failure := translateSubmitErr(err)
			sess.FailSubmit(failure)
			s.log.Warn("Submission failed",
				zap.Error(err),
				zap.String("session_id", sessionID),
				zap.String("user_id", userID),
			)
			return failure
		}

		// best-effort inventory update; the booking stands even if some
		// marks fail
		marks := s.gw.Seats.MarkUnavailableBatch(ctx, bookingReq.SeatIDs)
		if !marks.AllSucceeded() {
			s.log.Warn("Booking created with partial seat mark failure",
				zap.String("booking_id", booking.ID),
				zap.Strings("failed_seat_ids", marks.Failed),
			)
		}

		sess.FinishSubmit()

		s.log.Info("Booking submitted",
			zap.String("session_id", sessionID),
			zap.String("booking_id", booking.ID),
			zap.String("user_id", userID),
			zap.Int("seat_count", len(bookingReq.SeatIDs)),
			zap.Float64("total_price", bookingReq.TotalPrice),
		)

		r := response.BookingToResponse(booking, marks)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *wizardService) Cancel(ctx context.Context, sessionID string) error {
	err := s.sessions.Do(sessionID, func(sess *session.Session) error {
		return sess.Cancel()
	})
	if err != nil {
		return err
	}

	s.sessions.Remove(sessionID)
	s.log.Info("Session cancelled", zap.String("session_id", sessionID))
	return nil
}

// translateSubmitErr maps a ledger failure onto the taxonomy: a conflict
// means a selected seat was taken concurrently, anything else is the
// collaborator being unavailable.
func translateSubmitErr(err error) error {
	if errors.Is(err, gateway.ErrConflict) {
		return session.ErrSeatUnavailable
	}
	return fmt.Errorf("%w: %v", session.ErrCollaboratorUnavailable, err)
}

func findSeat(seats []*entity.Seat, id string) *entity.Seat {
	for _, seat := range seats {
		if seat.ID == id {
			return seat
		}
	}
	return nil
}
