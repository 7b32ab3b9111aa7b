package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/portfolio-hub/internal/logger"
	"github.com/sbilibin2017/portfolio-hub/internal/models"
	"github.com/sbilibin2017/portfolio-hub/internal/repositories"
)

// ProfileGetter defines the interface for viewing one portfolio.
type ProfileGetter interface {
	Get(ctx context.Context, username string) (models.Profile, error)
}

// NewGetPortfolioHandler returns an HTTP handler for viewing a single
// portfolio.
// @Summary View a portfolio
// @Description Returns one user's public profile by username (case-insensitive).
// @Tags portfolios
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.Profile "Public profile"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /portfolios/{username} [get]
func NewGetPortfolioHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		profile, err := svc.Get(r.Context(), username)
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}
