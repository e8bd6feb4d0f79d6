package entity

type Showtime struct {
	ID        string  `json:"id"`
	MovieID   string  `json:"movieId"`
	CinemaID  string  `json:"cinemaId"`
	Date      string  `json:"date"`      // 2006-01-02
	StartTime string  `json:"startTime"` // 15:04
	EndTime   string  `json:"endTime"`   // 15:04
	Hall      string  `json:"hall"`
	BasePrice float64 `json:"price"`
}
