package middleware

import (
	"errors"
	"net/http"
	"strings"

	"cinema-wizard/internal/data/gateway"
	"cinema-wizard/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the bearer token against the identity collaborator and
// stores the resolved user plus the raw token in the request context.
func Auth(identity gateway.Identity, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			user, err := identity.CurrentUser(r.Context(), token)
			if err != nil {
				if errors.Is(err, gateway.ErrUnauthenticated) {
					logger.Warn("Rejected token", zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Invalid or expired token")
					return
				}
				logger.Error("Failed to validate token", zap.Error(err))
				utils.ResponseBadGateway(w, "Identity service unavailable")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
