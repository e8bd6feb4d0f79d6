package request

type SelectMovieRequest struct {
	MovieID string `json:"movie_id" validate:"required"`
}

type SelectCinemaRequest struct {
	CinemaID string `json:"cinema_id" validate:"required"`
}

type SelectShowtimeRequest struct {
	ShowtimeID string `json:"showtime_id" validate:"required"`
}

type ToggleSeatRequest struct {
	SeatID string `json:"seat_id" validate:"required"`
}
