package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/portfolio-hub/internal/models"
	"github.com/sbilibin2017/portfolio-hub/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reqBody      LoginRequest
		rawBody      bool
		mockSetup    func(m *MockLoginer)
		expectedCode int
		checkBody    func(t *testing.T, body []byte)
	}{
		{
			name:    "success",
			reqBody: LoginRequest{Username: "alice", Password: "pw1234"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "pw1234").
					Return(models.Profile{Username: "alice", FullName: "Alice A"}, "token123", nil)
			},
			expectedCode: 200,
			checkBody: func(t *testing.T, body []byte) {
				var resp LoginResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "token123", resp.Token)
				assert.Equal(t, "alice", resp.Profile.Username)

				// The password digest must never appear in a response.
				var raw map[string]any
				assert.NoError(t, json.Unmarshal(body, &raw))
				profile := raw["profile"].(map[string]any)
				_, leaked := profile["password_hash"]
				assert.False(t, leaked)
			},
		},
		{
			name:    "invalid credentials",
			reqBody: LoginRequest{Username: "alice", Password: "wrongpw"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "wrongpw").
					Return(models.Profile{}, "", services.ErrInvalidCredentials)
			},
			expectedCode: 401,
			checkBody: func(t *testing.T, body []byte) {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, map[string]string{"error": "Invalid username or password"}, resp)
			},
		},
		{
			name:    "unknown user reports the same error",
			reqBody: LoginRequest{Username: "nouser", Password: "whatever"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "nouser", "whatever").
					Return(models.Profile{}, "", services.ErrInvalidCredentials)
			},
			expectedCode: 401,
			checkBody: func(t *testing.T, body []byte) {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, map[string]string{"error": "Invalid username or password"}, resp)
			},
		},
		{
			name:    "internal server error",
			reqBody: LoginRequest{Username: "alice", Password: "pw1234"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "pw1234").
					Return(models.Profile{}, "", errors.New("storage failure"))
			},
			expectedCode: 500,
			checkBody: func(t *testing.T, body []byte) {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, map[string]string{"error": "Internal server error"}, resp)
			},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			checkBody: func(t *testing.T, body []byte) {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, map[string]string{"error": "invalid request body"}, resp)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			tt.checkBody(t, rr.Body.Bytes())
		})
	}
}
