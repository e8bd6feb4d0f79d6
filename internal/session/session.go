// Package session implements the booking wizard's state machine: the
// in-progress selection (movie, cinema, showtime, seat set) and the step
// ordering invariants. A Session is conceptually single-threaded; it
// carries no locks of its own. Callers serialize access, which the
// Manager in this package does per session for the HTTP facade.
package session

import (
	"cinema-wizard/internal/data/entity"
	"cinema-wizard/internal/pricing"
)

// Step is the wizard's current position.
//
//	idle -> movie-selected -> cinema-selected -> showtime-selected
//	     -> seats-selected -> submitting -> idle (success)
//	                                     \-> seats-selected (failure)
type Step string

const (
	StepIdle             Step = "idle"
	StepMovieSelected    Step = "movie-selected"
	StepCinemaSelected   Step = "cinema-selected"
	StepShowtimeSelected Step = "showtime-selected"
	StepSeatsSelected    Step = "seats-selected"
	StepSubmitting       Step = "submitting"
)

// Session holds one user's in-progress booking. Selecting an upstream
// entity always clears everything downstream of it.
type Session struct {
	step     Step
	movie    *entity.Movie
	cinema   *entity.Cinema
	showtime *entity.Showtime
	seats    []*entity.Seat // unique by seat ID, insertion order kept
	lastErr  error
}

func New() *Session {
	return &Session{step: StepIdle}
}

func (s *Session) Step() Step                 { return s.step }
func (s *Session) Movie() *entity.Movie       { return s.movie }
func (s *Session) Cinema() *entity.Cinema     { return s.cinema }
func (s *Session) Showtime() *entity.Showtime { return s.showtime }
func (s *Session) LastError() error           { return s.lastErr }

// Seats returns a copy of the selected seat set.
func (s *Session) Seats() []*entity.Seat {
	out := make([]*entity.Seat, len(s.seats))
	copy(out, s.seats)
	return out
}

// SeatIDs returns the selected seat ids in selection order.
func (s *Session) SeatIDs() []string {
	ids := make([]string, len(s.seats))
	for i, seat := range s.seats {
		ids[i] = seat.ID
	}
	return ids
}

// SelectMovie sets the movie and clears cinema, showtime and seats.
// Always succeeds.
func (s *Session) SelectMovie(movie *entity.Movie) {
	s.movie = movie
	s.cinema = nil
	s.showtime = nil
	s.seats = nil
	s.lastErr = nil
	s.step = StepMovieSelected
}

// SelectCinema sets the cinema and clears showtime and seats. Requires a
// movie to be selected first.
func (s *Session) SelectCinema(cinema *entity.Cinema) error {
	if s.movie == nil {
		return ErrNoMovieSelected
	}
	s.cinema = cinema
	s.showtime = nil
	s.seats = nil
	s.lastErr = nil
	s.step = StepCinemaSelected
	return nil
}

// SelectShowtime sets the showtime and clears the seat set.
func (s *Session) SelectShowtime(showtime *entity.Showtime) error {
	if s.cinema == nil {
		return ErrNoCinemaSelected
	}
	s.showtime = showtime
	s.seats = nil
	s.lastErr = nil
	s.step = StepShowtimeSelected
	return nil
}

// ToggleSeat adds the seat to the selection, or removes it if its id is
// already selected. An unavailable seat is a no-op: the UI should never
// have offered it, but the container defends anyway. The step becomes
// seats-selected while the set is non-empty and falls back to
// showtime-selected when it empties again.
func (s *Session) ToggleSeat(seat *entity.Seat) error {
	if s.showtime == nil {
		return ErrNoShowtimeSelected
	}

	for i, selected := range s.seats {
		if selected.ID == seat.ID {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			if len(s.seats) == 0 {
				s.step = StepShowtimeSelected
			}
			return nil
		}
	}

	if !pricing.IsSelectable(seat) {
		return nil
	}

	s.seats = append(s.seats, seat)
	s.step = StepSeatsSelected
	return nil
}

// TotalPrice is the sum of the selected seats' prices. The VIP surcharge
// is already baked into each seat price; nothing is recomputed here.
func (s *Session) TotalPrice() float64 {
	var total float64
	for _, seat := range s.seats {
		total += seat.Price
	}
	return total
}

// Complete reports whether every selection required for submission is
// in place.
func (s *Session) Complete() bool {
	return s.movie != nil && s.cinema != nil && s.showtime != nil && len(s.seats) > 0
}

// BeginSubmit moves the session into the submitting step. It fails with
// ErrIncompleteSelection, leaving the session untouched, unless the
// wizard sits at seats-selected with a complete selection.
func (s *Session) BeginSubmit() error {
	if s.step != StepSeatsSelected || !s.Complete() {
		return ErrIncompleteSelection
	}
	s.step = StepSubmitting
	s.lastErr = nil
	return nil
}

// FinishSubmit ends a successful submission: all selections are cleared
// and the wizard returns to idle.
func (s *Session) FinishSubmit() {
	s.Reset()
}

// FailSubmit reverts a failed submission to seats-selected, keeping the
// whole selection so the user can retry, and records the error.
func (s *Session) FailSubmit(err error) {
	s.step = StepSeatsSelected
	s.lastErr = err
}

// Reset clears all selections and returns the wizard to idle.
func (s *Session) Reset() {
	s.movie = nil
	s.cinema = nil
	s.showtime = nil
	s.seats = nil
	s.lastErr = nil
	s.step = StepIdle
}

// Cancel resets the session. It is valid from any step except
// submitting, where the in-flight request must be bounded by its own
// timeout first. Cancelling an idle session is a harmless no-op.
func (s *Session) Cancel() error {
	if s.step == StepSubmitting {
		return ErrCancelNotAllowed
	}
	s.Reset()
	return nil
}
