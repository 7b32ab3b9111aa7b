package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/portfolio-hub/internal/logger"
	"github.com/sbilibin2017/portfolio-hub/internal/middlewares"
	"github.com/sbilibin2017/portfolio-hub/internal/models"
	"github.com/sbilibin2017/portfolio-hub/internal/repositories"
	"github.com/sbilibin2017/portfolio-hub/internal/services"
)

// Updater defines the interface that the portfolio edit service must
// implement.
type Updater interface {
	Update(ctx context.Context, actor, target string, in services.UpdateInput) error
}

// UpdateRequest represents the JSON body for an edit-and-save submission.
// Omitted fields are left unchanged.
// swagger:model UpdateRequest
type UpdateRequest struct {
	// Full display name
	FullName *string `json:"full_name,omitempty"`

	// Bio / about text
	Bio *string `json:"bio,omitempty"`

	// Comma-separated skills, e.g. "Go, MongoDB"
	Skills *string `json:"skills,omitempty"`

	// Full replacement list of projects
	Projects *[]models.Project `json:"projects,omitempty"`

	// Social links; recognized keys are GitHub, LinkedIn, Website
	SocialLinks map[string]string `json:"social_links,omitempty"`
}

// UpdateResponse represents a successful edit response
// swagger:model UpdateResponse
type UpdateResponse struct {
	// Success message
	// default: Portfolio saved
	Message string `json:"message"`
}

// NewUpdatePortfolioHandler returns an HTTP handler for editing a portfolio.
// The acting user comes from the session context; the username in the URL
// only names the target, and editing anyone else's portfolio is forbidden.
// @Summary Edit a portfolio
// @Description Applies a partial update to the caller's own portfolio.
// @Tags portfolios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param updateRequest body handlers.UpdateRequest true "Fields to update"
// @Success 200 {object} handlers.UpdateResponse "Portfolio saved"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Missing session"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /portfolios/{username} [put]
func NewUpdatePortfolioHandler(svc Updater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middlewares.ActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "authentication required"})
			return
		}

		var req UpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		in := services.UpdateInput{
			FullName:    req.FullName,
			Bio:         req.Bio,
			Skills:      req.Skills,
			Projects:    req.Projects,
			SocialLinks: req.SocialLinks,
		}

		err := svc.Update(r.Context(), actor, chi.URLParam(r, "username"), in)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "You can only edit your own portfolio"})
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
		json.NewEncoder(w).Encode(UpdateResponse{Message: "Portfolio saved"})
	}
}
