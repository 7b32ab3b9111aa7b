package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/portfolio-hub/internal/logger"
	"github.com/sbilibin2017/portfolio-hub/internal/middlewares"
	"github.com/sbilibin2017/portfolio-hub/internal/repositories"
	"github.com/sbilibin2017/portfolio-hub/internal/services"
)

// PictureSetter defines the interface for changing a profile picture.
type PictureSetter interface {
	SetProfilePicture(ctx context.Context, actor, target string, img []byte) error
}

// PictureRequest represents the JSON body of a picture upload
// swagger:model PictureRequest
type PictureRequest struct {
	// Base64-encoded image bytes, png or jpeg
	// required: true
	Image string `json:"image"`
}

// PictureResponse represents a successful picture upload response
// swagger:model PictureResponse
type PictureResponse struct {
	// Success message
	// default: Profile picture updated
	Message string `json:"message"`
}

// NewSetPictureHandler returns an HTTP handler for uploading a profile
// picture.
// @Summary Set profile picture
// @Description Stores a png or jpeg profile picture on the caller's own portfolio.
// @Tags portfolios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param pictureRequest body handlers.PictureRequest true "Base64-encoded image"
// @Success 200 {object} handlers.PictureResponse "Picture stored"
// @Failure 400 {object} handlers.ErrorResponse "Invalid body or unsupported image format"
// @Failure 401 {object} handlers.ErrorResponse "Missing session"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /portfolios/{username}/picture [post]
func NewSetPictureHandler(svc PictureSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middlewares.ActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "authentication required"})
			return
		}

		var req PictureRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		img, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "image is not valid base64"})
			return
		}

		err = svc.SetProfilePicture(r.Context(), actor, chi.URLParam(r, "username"), img)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnsupportedImage):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Unsupported image format"})
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
		json.NewEncoder(w).Encode(PictureResponse{Message: "Profile picture updated"})
	}
}
