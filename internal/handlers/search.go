package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/portfolio-hub/internal/logger"
	"github.com/sbilibin2017/portfolio-hub/internal/models"
)

// Searcher defines the interface that the portfolio search service must
// implement.
type Searcher interface {
	Search(ctx context.Context, term string) ([]models.Profile, error)
}

// SearchResponse represents the portfolio search result
// swagger:model SearchResponse
type SearchResponse struct {
	// Matching public profiles
	Portfolios []models.Profile `json:"portfolios"`
}

// NewSearchHandler returns an HTTP handler for browsing portfolios.
// @Summary Search portfolios
// @Description Case-insensitive substring search over username, full name, and skills. An empty query returns all portfolios. Results never contain password digests.
// @Tags portfolios
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} handlers.SearchResponse "Matching portfolios"
// @Router /portfolios [get]
func NewSearchHandler(svc Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := svc.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SearchResponse{Portfolios: profiles})
	}
}
