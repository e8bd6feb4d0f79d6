package response

import (
	"time"

	"cinema-wizard/internal/data/entity"
	"cinema-wizard/pkg/utils"
)

type MovieResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   *string  `json:"description,omitempty"`
	PosterURL     *string  `json:"poster_url,omitempty"`
	Rating        float64  `json:"rating"`
	ReleaseDate   string   `json:"release_date"`
	Duration      string   `json:"duration"`
	Genres        []string `json:"genres"`
	ReleaseStatus string   `json:"release_status"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:            movie.ID,
		Title:         movie.Title,
		Description:   movie.Description,
		PosterURL:     movie.PosterURL,
		Rating:        movie.Rating,
		ReleaseDate:   movie.ReleaseDate.Format("2006-01-02"),
		Duration:      utils.FormatDuration(movie.DurationInMinutes),
		Genres:        movie.Genres,
		ReleaseStatus: string(movie.ReleaseStatusAt(time.Now())),
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}
