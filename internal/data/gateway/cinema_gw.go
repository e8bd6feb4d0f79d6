package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"cinema-wizard/internal/data/entity"

	"go.uber.org/zap"
)

type CinemaDirectory interface {
	GetAll(ctx context.Context) ([]*entity.Cinema, error)
	GetByID(ctx context.Context, id string) (*entity.Cinema, error)
}

type cinemaDirectory struct {
	c   *client
	log *zap.Logger
}

func (g *cinemaDirectory) GetAll(ctx context.Context) ([]*entity.Cinema, error) {
	var cinemas []*entity.Cinema
	if err := g.c.getJSON(ctx, "/cinemas", &cinemas); err != nil {
		g.log.Error("Failed to list cinemas", zap.Error(err))
		return nil, fmt.Errorf("list cinemas: %w", err)
	}
	return cinemas, nil
}

func (g *cinemaDirectory) GetByID(ctx context.Context, id string) (*entity.Cinema, error) {
	var cinema entity.Cinema
	if err := g.c.getJSON(ctx, "/cinemas/"+url.PathEscape(id), &cinema); err != nil {
		if !errors.Is(err, ErrNotFound) {
			g.log.Error("Failed to get cinema", zap.Error(err), zap.String("cinema_id", id))
		}
		return nil, fmt.Errorf("get cinema %s: %w", id, err)
	}
	return &cinema, nil
}
