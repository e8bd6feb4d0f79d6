package response

import "cinema-wizard/internal/data/entity"

type CinemaResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
}

type ShowtimeResponse struct {
	ID        string  `json:"id"`
	MovieID   string  `json:"movie_id"`
	CinemaID  string  `json:"cinema_id"`
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Hall      string  `json:"hall"`
	BasePrice float64 `json:"base_price"`
}

type SeatResponse struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Row         string  `json:"row"`
	Number      int     `json:"number"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"is_available"`
}

// Helper converters
func CinemaToResponse(cinema *entity.Cinema) CinemaResponse {
	return CinemaResponse{
		ID:      cinema.ID,
		Name:    cinema.Name,
		Address: cinema.Address,
		Phone:   cinema.Phone,
	}
}

func CinemasToResponse(cinemas []*entity.Cinema) []CinemaResponse {
	out := make([]CinemaResponse, len(cinemas))
	for i, cinema := range cinemas {
		out[i] = CinemaToResponse(cinema)
	}
	return out
}

func ShowtimeToResponse(showtime *entity.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:        showtime.ID,
		MovieID:   showtime.MovieID,
		CinemaID:  showtime.CinemaID,
		Date:      showtime.Date,
		StartTime: showtime.StartTime,
		EndTime:   showtime.EndTime,
		Hall:      showtime.Hall,
		BasePrice: showtime.BasePrice,
	}
}

func ShowtimesToResponse(showtimes []*entity.Showtime) []ShowtimeResponse {
	out := make([]ShowtimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		out[i] = ShowtimeToResponse(showtime)
	}
	return out
}

func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{
		ID:          seat.ID,
		Label:       seat.Label(),
		Row:         seat.Row,
		Number:      seat.Number,
		Type:        string(seat.Type),
		Price:       seat.Price,
		IsAvailable: seat.IsAvailable,
	}
}

func SeatsToResponse(seats []*entity.Seat) []SeatResponse {
	out := make([]SeatResponse, len(seats))
	for i, seat := range seats {
		out[i] = SeatToResponse(seat)
	}
	return out
}
