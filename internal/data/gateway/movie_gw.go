package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"cinema-wizard/internal/data/entity"

	"go.uber.org/zap"
)

type MovieCatalog interface {
	GetAll(ctx context.Context) ([]*entity.Movie, error)
	GetByID(ctx context.Context, id string) (*entity.Movie, error)
	Search(ctx context.Context, query string) ([]*entity.Movie, error)
}

type movieCatalog struct {
	c   *client
	log *zap.Logger
}

func (g *movieCatalog) GetAll(ctx context.Context) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	if err := g.c.getJSON(ctx, "/movies", &movies); err != nil {
		g.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (g *movieCatalog) GetByID(ctx context.Context, id string) (*entity.Movie, error) {
	var movie entity.Movie
	if err := g.c.getJSON(ctx, "/movies/"+url.PathEscape(id), &movie); err != nil {
		if !errors.Is(err, ErrNotFound) {
			g.log.Error("Failed to get movie", zap.Error(err), zap.String("movie_id", id))
		}
		return nil, fmt.Errorf("get movie %s: %w", id, err)
	}
	return &movie, nil
}

func (g *movieCatalog) Search(ctx context.Context, query string) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	path := "/movies?q=" + url.QueryEscape(query)
	if err := g.c.getJSON(ctx, path, &movies); err != nil {
		g.log.Error("Failed to search movies", zap.Error(err), zap.String("query", query))
		return nil, fmt.Errorf("search movies %q: %w", query, err)
	}
	return movies, nil
}
