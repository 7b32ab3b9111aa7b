package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/portfolio-hub/internal/logger"
)

// Tokener defines the minimal session interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Username(ctx context.Context, tokenString string) (string, error)
}

// AuthMiddleware validates the bearer token and puts the session's username
// into the request context as the acting user. Handlers must take the actor
// from the context, never from the payload.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			username, err := tokener.Username(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(ctx, username)))
		})
	}
}
