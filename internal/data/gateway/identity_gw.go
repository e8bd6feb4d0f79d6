package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cinema-wizard/internal/data/entity"

	"go.uber.org/zap"
)

type Identity interface {
	// CurrentUser resolves the bearer token to the logged-in user.
	// Returns ErrUnauthenticated for a missing or rejected token.
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}

type identityClient struct {
	c   *client
	log *zap.Logger
}

func (g *identityClient) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	var user entity.User
	if err := g.c.send(ctx, http.MethodGet, "/users/me", token, nil, &user); err != nil {
		if !errors.Is(err, ErrUnauthenticated) {
			g.log.Error("Failed to resolve current user", zap.Error(err))
		}
		return nil, fmt.Errorf("resolve current user: %w", err)
	}
	return &user, nil
}
