package usecase

import (
	"context"
	"time"

	"cinema-wizard/internal/data/entity"
	"cinema-wizard/internal/data/gateway"
	"cinema-wizard/internal/dto/request"
	"cinema-wizard/internal/dto/response"
	"cinema-wizard/internal/pricing"

	"go.uber.org/zap"
)

const (
	MovieCategoryAll        = "all"
	MovieCategoryNowPlaying = "now-playing"
	MovieCategoryUpcoming   = "upcoming"
)

// CatalogService proxies the browse pages: movies, cinemas, showtimes
// and the seat map for a showtime.
type CatalogService interface {
	GetMovies(ctx context.Context, category, query string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	GetCinemas(ctx context.Context) ([]response.CinemaResponse, error)
	GetShowtimes(ctx context.Context, movieID, cinemaID string) ([]response.ShowtimeResponse, error)
	GetSeats(ctx context.Context, showtimeID string) ([]response.SeatResponse, error)
}

type catalogService struct {
	gw  *gateway.Gateway
	log *zap.Logger
}

func NewCatalogService(gw *gateway.Gateway, log *zap.Logger) CatalogService {
	return &catalogService{
		gw:  gw,
		log: log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetMovies(ctx context.Context, category, query string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	var (
		movies []*entity.Movie
		err    error
	)
	if query != "" {
		movies, err = s.gw.Movies.Search(ctx, query)
	} else {
		movies, err = s.gw.Movies.GetAll(ctx)
	}
	if err != nil {
		return nil, collaboratorErr(err)
	}

	movies = filterByCategory(movies, category, time.Now())

	total := int64(len(movies))
	page := pageSlice(movies, req.Offset(), req.Limit())

	s.log.Info("Movies retrieved",
		zap.String("category", category),
		zap.String("query", query),
		zap.Int("count", len(page)),
		zap.Int64("total", total),
	)
	return response.NewPaginatedResponse(response.MoviesToResponse(page), req.Page, req.Limit(), total), nil
}

func (s *catalogService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.gw.Movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, collaboratorErr(err)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *catalogService) GetCinemas(ctx context.Context) ([]response.CinemaResponse, error) {
	cinemas, err := s.gw.Cinemas.GetAll(ctx)
	if err != nil {
		return nil, collaboratorErr(err)
	}
	return response.CinemasToResponse(cinemas), nil
}

func (s *catalogService) GetShowtimes(ctx context.Context, movieID, cinemaID string) ([]response.ShowtimeResponse, error) {
	var (
		showtimes []*entity.Showtime
		err       error
	)
	if cinemaID != "" {
		showtimes, err = s.gw.Showtimes.GetByMovieAndCinema(ctx, movieID, cinemaID)
	} else {
		showtimes, err = s.gw.Showtimes.GetByMovieID(ctx, movieID)
	}
	if err != nil {
		return nil, collaboratorErr(err)
	}
	return response.ShowtimesToResponse(showtimes), nil
}

func (s *catalogService) GetSeats(ctx context.Context, showtimeID string) ([]response.SeatResponse, error) {
	showtime, err := s.gw.Showtimes.GetByID(ctx, showtimeID)
	if err != nil {
		return nil, collaboratorErr(err)
	}

	seats, err := s.gw.Seats.GetByShowtimeID(ctx, showtimeID)
	if err != nil {
		return nil, collaboratorErr(err)
	}

	// prices in the seat map come from the pricing rules, not from
	// whatever the backend happened to store
	for _, seat := range seats {
		seat.Price = pricing.PriceOf(seat.Type, showtime.BasePrice)
	}
	return response.SeatsToResponse(seats), nil
}

func filterByCategory(movies []*entity.Movie, category string, now time.Time) []*entity.Movie {
	var want entity.ReleaseStatus
	switch category {
	case MovieCategoryNowPlaying:
		want = entity.ReleaseStatusNowPlaying
	case MovieCategoryUpcoming:
		want = entity.ReleaseStatusComingSoon
	default:
		return movies
	}

	var out []*entity.Movie
	for _, movie := range movies {
		if movie.ReleaseStatusAt(now) == want {
			out = append(out, movie)
		}
	}
	return out
}

func pageSlice[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
