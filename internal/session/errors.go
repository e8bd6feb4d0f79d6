package session

import "errors"

// Failure taxonomy for the booking wizard. Everything a collaborator can
// throw at us is translated into one of these at the usecase boundary;
// nothing propagates to handlers as an untyped fault.
var (
	// ErrIncompleteSelection - submit attempted before movie, cinema,
	// showtime and at least one seat were all chosen. No state change.
	ErrIncompleteSelection = errors.New("booking selection is incomplete")

	// ErrSeatUnavailable - a selected seat was taken concurrently and the
	// ledger rejected the booking.
	ErrSeatUnavailable = errors.New("seat is no longer available")

	// ErrCollaboratorUnavailable - the remote backend could not be
	// reached or failed; the selection is preserved for retry.
	ErrCollaboratorUnavailable = errors.New("booking service is unavailable")

	// Step-ordering guards. The UI should never trigger these; the
	// container defends anyway.
	ErrNoMovieSelected    = errors.New("no movie selected")
	ErrNoCinemaSelected   = errors.New("no cinema selected")
	ErrNoShowtimeSelected = errors.New("no showtime selected")

	ErrSessionNotFound  = errors.New("booking session not found")
	ErrCancelNotAllowed = errors.New("cannot cancel while submission is in progress")
)
