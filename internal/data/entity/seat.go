package entity

import "strconv"

type SeatType string

const (
	SeatTypeStandard SeatType = "standard"
	SeatTypeVIP      SeatType = "vip"
)

type Seat struct {
	ID          string   `json:"id"`
	ShowtimeID  string   `json:"showTimeId"`
	Row         string   `json:"row"`    // A, B, C, etc.
	Number      int      `json:"number"` // 1, 2, 3, etc.
	Type        SeatType `json:"type"`
	Price       float64  `json:"price"`
	IsAvailable bool     `json:"isAvailable"`
}

// Label is the human-facing seat name, e.g. "A1".
func (s *Seat) Label() string {
	return s.Row + strconv.Itoa(s.Number)
}
