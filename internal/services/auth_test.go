package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/portfolio-hub/internal/models"
	"github.com/sbilibin2017/portfolio-hub/internal/password"
	"github.com/sbilibin2017/portfolio-hub/internal/repositories"
	"github.com/sbilibin2017/portfolio-hub/internal/services"
)

func TestAuthService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		username  string
		fullName  string
		email     string
		pw        string
		confirm   string
		insertErr error
		wantErr   error
		noInsert  bool
	}{
		{
			name:     "successful signup",
			username: "Alice",
			fullName: "Alice A",
			email:    "a@x.com",
			pw:       "pw1234",
			confirm:  "pw1234",
		},
		{
			name:     "empty username",
			username: "   ",
			pw:       "pw1234",
			confirm:  "pw1234",
			wantErr:  services.ErrMissingFields,
			noInsert: true,
		},
		{
			name:     "empty password",
			username: "alice",
			wantErr:  services.ErrMissingFields,
			noInsert: true,
		},
		{
			name:     "confirmation mismatch",
			username: "alice",
			pw:       "pw1234",
			confirm:  "pw5678",
			wantErr:  services.ErrPasswordMismatch,
			noInsert: true,
		},
		{
			name:      "username taken",
			username:  "alice",
			pw:        "pw1234",
			confirm:   "pw1234",
			insertErr: repositories.ErrUsernameTaken,
			wantErr:   repositories.ErrUsernameTaken,
		},
		{
			name:      "store error",
			username:  "alice",
			pw:        "pw1234",
			confirm:   "pw1234",
			insertErr: errors.New("disk full"),
			wantErr:   errors.New("disk full"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockFinder := services.NewMockUserFinder(ctrl)
			mockInserter := services.NewMockUserInserter(ctrl)
			mockSessions := services.NewMockSessionBinder(ctrl)

			if !tt.noInsert {
				mockInserter.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user models.User) error {
						// The record is normalized and complete before it
						// reaches the store.
						assert.Equal(t, "alice", user.Username)
						assert.NotEmpty(t, user.PasswordHash)
						assert.Empty(t, user.Bio)
						assert.Empty(t, user.Skills)
						assert.Empty(t, user.Projects)
						assert.Empty(t, user.SocialLinks)
						assert.False(t, user.CreatedAt.IsZero())
						assert.True(t, user.UpdatedAt.Equal(user.CreatedAt))
						return tt.insertErr
					})
			}

			svc := services.NewAuthService(mockFinder, mockInserter, mockSessions)

			err := svc.Signup(context.Background(), tt.username, tt.fullName, tt.email, tt.pw, tt.confirm)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	digest, err := password.Hash("pw1234")
	assert.NoError(t, err)

	alice := &models.User{Username: "alice", FullName: "Alice A", PasswordHash: digest}

	tests := []struct {
		name      string
		username  string
		pw        string
		user      *models.User
		findErr   error
		wantErr   error
		wantToken string
	}{
		{
			name:      "successful login",
			username:  "alice",
			pw:        "pw1234",
			user:      alice,
			wantToken: "token123",
		},
		{
			name:     "unknown user reports invalid credentials",
			username: "nouser",
			pw:       "whatever",
			findErr:  repositories.ErrUserNotFound,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password reports the same error",
			username: "alice",
			pw:       "wrongpw",
			user:     alice,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "corrupt digest reports the same error",
			username: "alice",
			pw:       "pw1234",
			user:     &models.User{Username: "alice", PasswordHash: "not-a-digest"},
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "store error",
			username: "alice",
			pw:       "pw1234",
			findErr:  errors.New("db error"),
			wantErr:  errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockFinder := services.NewMockUserFinder(ctrl)
			mockInserter := services.NewMockUserInserter(ctrl)
			mockSessions := services.NewMockSessionBinder(ctrl)

			mockFinder.EXPECT().
				Find(gomock.Any(), tt.username).
				Return(tt.user, tt.findErr)

			if tt.wantErr == nil {
				mockSessions.EXPECT().
					Login(gomock.Any(), tt.user.Username).
					Return(tt.wantToken, nil)
			}

			svc := services.NewAuthService(mockFinder, mockInserter, mockSessions)

			profile, token, err := svc.Login(context.Background(), tt.username, tt.pw)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, "alice", profile.Username)
			assert.Equal(t, "Alice A", profile.FullName)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFinder := services.NewMockUserFinder(ctrl)
	mockInserter := services.NewMockUserInserter(ctrl)
	mockSessions := services.NewMockSessionBinder(ctrl)

	mockSessions.EXPECT().Logout(gomock.Any(), "token123").Return(nil)

	svc := services.NewAuthService(mockFinder, mockInserter, mockSessions)
	assert.NoError(t, svc.Logout(context.Background(), "token123"))
}
