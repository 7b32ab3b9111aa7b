package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sbilibin2017/portfolio-hub/internal/logger"
	"github.com/sbilibin2017/portfolio-hub/internal/models"
	"github.com/sbilibin2017/portfolio-hub/internal/password"
	"github.com/sbilibin2017/portfolio-hub/internal/repositories"
)

// Error variables
var (
	ErrMissingFields      = errors.New("username and password are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserFinder defines the lookup operation the auth service needs.
type UserFinder interface {
	Find(ctx context.Context, username string) (*models.User, error)
}

// UserInserter defines the insert operation. Insert must enforce username
// uniqueness atomically and report repositories.ErrUsernameTaken.
type UserInserter interface {
	Insert(ctx context.Context, user models.User) error
}

// SessionBinder opens and closes login sessions.
type SessionBinder interface {
	Login(ctx context.Context, username string) (string, error)
	Logout(ctx context.Context, token string) error
}

// AuthService handles signup, login, and logout.
type AuthService struct {
	finder   UserFinder
	inserter UserInserter
	sessions SessionBinder
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(finder UserFinder, inserter UserInserter, sessions SessionBinder) *AuthService {
	return &AuthService{
		finder:   finder,
		inserter: inserter,
		sessions: sessions,
	}
}

// Signup creates a new account with an empty portfolio. It does not log the
// user in. A taken username surfaces repositories.ErrUsernameTaken from the
// store, whose uniqueness check is atomic with the insert.
func (svc *AuthService) Signup(ctx context.Context, username, fullName, email, pw, confirm string) error {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || pw == "" {
		return ErrMissingFields
	}
	if pw != confirm {
		return ErrPasswordMismatch
	}

	digest, err := password.Hash(pw)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	now := time.Now().UTC()
	user := models.User{
		Username:     username,
		FullName:     strings.TrimSpace(fullName),
		Email:        strings.TrimSpace(email),
		PasswordHash: digest,
		Bio:          "",
		Skills:       []string{},
		Projects:     []models.Project{},
		SocialLinks:  map[string]string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := svc.inserter.Insert(ctx, user); err != nil {
		if !errors.Is(err, repositories.ErrUsernameTaken) {
			logger.Log.Errorw("failed to save user", "err", err)
		}
		return err
	}
	return nil
}

// Login verifies the credentials, binds a session, and returns the public
// profile together with the session token. An unknown username, a corrupt
// stored digest, and a wrong password all report ErrInvalidCredentials, so a
// caller cannot probe which accounts exist.
func (svc *AuthService) Login(ctx context.Context, username, pw string) (models.Profile, string, error) {
	user, err := svc.finder.Find(ctx, username)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return models.Profile{}, "", ErrInvalidCredentials
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return models.Profile{}, "", err
	}

	ok, err := password.Verify(user.PasswordHash, pw)
	if err != nil {
		logger.Log.Errorw("stored password digest is malformed", "username", user.Username)
		return models.Profile{}, "", ErrInvalidCredentials
	}
	if !ok {
		return models.Profile{}, "", ErrInvalidCredentials
	}

	token, err := svc.sessions.Login(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to open session", "err", err)
		return models.Profile{}, "", err
	}

	return user.Profile(), token, nil
}

// Logout closes the session bound to the token.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	return svc.sessions.Logout(ctx, token)
}
