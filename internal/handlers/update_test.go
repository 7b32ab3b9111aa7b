package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/portfolio-hub/internal/middlewares"
	"github.com/sbilibin2017/portfolio-hub/internal/repositories"
	"github.com/sbilibin2017/portfolio-hub/internal/services"
)

func TestUpdatePortfolioHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bio := "Gopher"

	tests := []struct {
		name         string
		actor        string // empty = no session in context
		target       string
		reqBody      UpdateRequest
		rawBody      bool
		mockSetup    func(m *MockUpdater)
		expectedCode int
	}{
		{
			name:    "owner saves their portfolio",
			actor:   "alice",
			target:  "alice",
			reqBody: UpdateRequest{Bio: &bio},
			mockSetup: func(m *MockUpdater) {
				m.EXPECT().
					Update(gomock.Any(), "alice", "alice", gomock.Any()).
					DoAndReturn(func(_ interface{}, _, _ string, in services.UpdateInput) error {
						assert.Equal(t, "Gopher", *in.Bio)
						return nil
					})
			},
			expectedCode: 200,
		},
		{
			name:    "editing someone else is forbidden",
			actor:   "alice",
			target:  "bob",
			reqBody: UpdateRequest{Bio: &bio},
			mockSetup: func(m *MockUpdater) {
				m.EXPECT().
					Update(gomock.Any(), "alice", "bob", gomock.Any()).
					Return(services.ErrNotOwner)
			},
			expectedCode: 403,
		},
		{
			name:    "target does not exist",
			actor:   "ghost",
			target:  "ghost",
			reqBody: UpdateRequest{Bio: &bio},
			mockSetup: func(m *MockUpdater) {
				m.EXPECT().
					Update(gomock.Any(), "ghost", "ghost", gomock.Any()).
					Return(repositories.ErrUserNotFound)
			},
			expectedCode: 404,
		},
		{
			name:         "no session",
			target:       "alice",
			reqBody:      UpdateRequest{Bio: &bio},
			expectedCode: 401,
		},
		{
			name:         "invalid json",
			actor:        "alice",
			target:       "alice",
			rawBody:      true,
			expectedCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Put("/portfolios/{username}", NewUpdatePortfolioHandler(mockSvc))

			var body *bytes.Buffer
			if tt.rawBody {
				body = bytes.NewBufferString("{invalid json}")
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				body = bytes.NewBuffer(bodyBytes)
			}

			req := httptest.NewRequest(http.MethodPut, "/portfolios/"+tt.target, body)
			if tt.actor != "" {
				req = req.WithContext(middlewares.WithActor(req.Context(), tt.actor))
			}

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
