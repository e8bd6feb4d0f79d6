package entity

import (
	"encoding/json"
	"strings"
	"time"
)

type ReleaseStatus string

const (
	ReleaseStatusNowPlaying ReleaseStatus = "now_playing"
	ReleaseStatusComingSoon ReleaseStatus = "coming_soon"
)

type Movie struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       *string   `json:"description,omitempty"`
	PosterURL         *string   `json:"posterUrl,omitempty"`
	Rating            float64   `json:"rating"`
	ReleaseDate       time.Time `json:"releaseDate"`
	DurationInMinutes int       `json:"duration"`
	Genres            GenreList `json:"genre"`
}

// ReleaseStatusAt classifies the movie relative to a reference date.
func (m *Movie) ReleaseStatusAt(now time.Time) ReleaseStatus {
	if m.ReleaseDate.After(now) {
		return ReleaseStatusComingSoon
	}
	return ReleaseStatusNowPlaying
}

// GenreList normalizes the two genre representations the backend emits:
// a JSON array of strings or a single comma-delimited string. After
// decoding it is always a plain []string, so nothing downstream branches
// on representation.
type GenreList []string

func (g *GenreList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*g = list
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}

	*g = nil
	for _, part := range strings.Split(joined, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*g = append(*g, part)
		}
	}
	return nil
}
