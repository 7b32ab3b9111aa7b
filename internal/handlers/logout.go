package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logged out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler that revokes the current session.
// @Summary Log out
// @Description Revokes the session bound to the bearer token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.LogoutResponse "Session revoked"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid session"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Fields(r.Header.Get("Authorization"))
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "missing bearer token"})
			return
		}

		if err := svc.Logout(r.Context(), parts[1]); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid session"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{Message: "Logged out"})
	}
}
