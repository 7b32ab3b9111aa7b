package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/portfolio-hub/internal/models"
)

func TestSearchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		url          string
		mockSetup    func(m *MockSearcher)
		expectedCode int
		wantCount    int
	}{
		{
			name: "term matches",
			url:  "/portfolios?q=py",
			mockSetup: func(m *MockSearcher) {
				m.EXPECT().
					Search(gomock.Any(), "py").
					Return([]models.Profile{{Username: "alice", Skills: []string{"Python"}}}, nil)
			},
			expectedCode: 200,
			wantCount:    1,
		},
		{
			name: "empty term returns all",
			url:  "/portfolios",
			mockSetup: func(m *MockSearcher) {
				m.EXPECT().
					Search(gomock.Any(), "").
					Return([]models.Profile{{Username: "alice"}, {Username: "bob"}}, nil)
			},
			expectedCode: 200,
			wantCount:    2,
		},
		{
			name: "internal server error",
			url:  "/portfolios?q=py",
			mockSetup: func(m *MockSearcher) {
				m.EXPECT().
					Search(gomock.Any(), "py").
					Return(nil, errors.New("storage failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSearcher(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewSearchHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != 200 {
				return
			}

			var resp SearchResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Len(t, resp.Portfolios, tt.wantCount)
		})
	}
}
