package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/portfolio-hub/internal/logger"
	"github.com/sbilibin2017/portfolio-hub/internal/repositories"
	"github.com/sbilibin2017/portfolio-hub/internal/services"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, username, fullName, email, password, confirm string) error
}

// SignupRequest represents the JSON body for account creation
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Full display name
	// default: Alice A
	FullName string `json:"full_name"`

	// Email (optional)
	// default: alice@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: pw1234
	Password string `json:"password"`

	// Password confirmation, must match password
	// required: true
	// default: pw1234
	ConfirmPassword string `json:"confirm_password"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	// Success message
	// default: Account created
	Message string `json:"message"`
}

// ErrorResponse represents an error response body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewSignupHandler returns an HTTP handler for account creation.
// @Summary Create an account
// @Description Creates a new user account with an empty portfolio. Username is unique and case-insensitive. Does not log the user in.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 201 {object} handlers.SignupResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields or password mismatch"
// @Failure 409 {object} handlers.ErrorResponse "Username already exists"
// @Router /signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		err := svc.Signup(r.Context(), req.Username, req.FullName, req.Email, req.Password, req.ConfirmPassword)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields),
				errors.Is(err, services.ErrPasswordMismatch):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, repositories.ErrUsernameTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Username already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SignupResponse{Message: "Account created"})
	}
}
