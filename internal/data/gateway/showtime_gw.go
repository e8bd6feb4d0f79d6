package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"cinema-wizard/internal/data/entity"

	"go.uber.org/zap"
)

type ShowtimeDirectory interface {
	GetByID(ctx context.Context, id string) (*entity.Showtime, error)
	GetByMovieID(ctx context.Context, movieID string) ([]*entity.Showtime, error)
	GetByMovieAndCinema(ctx context.Context, movieID, cinemaID string) ([]*entity.Showtime, error)
}

type showtimeDirectory struct {
	c   *client
	log *zap.Logger
}

func (g *showtimeDirectory) GetByID(ctx context.Context, id string) (*entity.Showtime, error) {
	var showtime entity.Showtime
	if err := g.c.getJSON(ctx, "/showTimes/"+url.PathEscape(id), &showtime); err != nil {
		if !errors.Is(err, ErrNotFound) {
			g.log.Error("Failed to get showtime", zap.Error(err), zap.String("showtime_id", id))
		}
		return nil, fmt.Errorf("get showtime %s: %w", id, err)
	}
	return &showtime, nil
}

func (g *showtimeDirectory) GetByMovieID(ctx context.Context, movieID string) ([]*entity.Showtime, error) {
	var showtimes []*entity.Showtime
	path := "/showTimes?movieId=" + url.QueryEscape(movieID)
	if err := g.c.getJSON(ctx, path, &showtimes); err != nil {
		g.log.Error("Failed to list showtimes by movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("list showtimes for movie %s: %w", movieID, err)
	}
	return showtimes, nil
}

func (g *showtimeDirectory) GetByMovieAndCinema(ctx context.Context, movieID, cinemaID string) ([]*entity.Showtime, error) {
	var showtimes []*entity.Showtime
	path := fmt.Sprintf("/showTimes?movieId=%s&cinemaId=%s", url.QueryEscape(movieID), url.QueryEscape(cinemaID))
	if err := g.c.getJSON(ctx, path, &showtimes); err != nil {
		g.log.Error("Failed to list showtimes",
			zap.Error(err),
			zap.String("movie_id", movieID),
			zap.String("cinema_id", cinemaID),
		)
		return nil, fmt.Errorf("list showtimes for movie %s at cinema %s: %w", movieID, cinemaID, err)
	}
	return showtimes, nil
}
