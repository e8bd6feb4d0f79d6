package response

import (
	"cinema-wizard/internal/session"
	"cinema-wizard/pkg/utils"
)

// SessionResponse is the wizard state as the UI sees it: current step,
// the selections made so far and the derived total.
type SessionResponse struct {
	SessionID  string            `json:"session_id"`
	Step       string            `json:"step"`
	Movie      *MovieResponse    `json:"movie,omitempty"`
	Cinema     *CinemaResponse   `json:"cinema,omitempty"`
	Showtime   *ShowtimeResponse `json:"showtime,omitempty"`
	Seats      []SeatResponse    `json:"seats"`
	TotalPrice float64           `json:"total_price"`
	Display    string            `json:"total_price_display"`
	LastError  string            `json:"last_error,omitempty"`
}

func SessionToResponse(id string, s *session.Session) *SessionResponse {
	resp := &SessionResponse{
		SessionID:  id,
		Step:       string(s.Step()),
		Seats:      SeatsToResponse(s.Seats()),
		TotalPrice: s.TotalPrice(),
		Display:    utils.FormatPrice(s.TotalPrice()),
	}

	if movie := s.Movie(); movie != nil {
		m := MovieToResponse(movie)
		resp.Movie = &m
	}
	if cinema := s.Cinema(); cinema != nil {
		c := CinemaToResponse(cinema)
		resp.Cinema = &c
	}
	if showtime := s.Showtime(); showtime != nil {
		st := ShowtimeToResponse(showtime)
		resp.Showtime = &st
	}
	if err := s.LastError(); err != nil {
		resp.LastError = err.Error()
	}

	return resp
}
