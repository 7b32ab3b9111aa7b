// Package sessions binds logged-in usernames to bearer tokens for the
// lifetime of one process. Tokens are HS256 JWTs carrying a session id that
// must also be present in an in-memory registry, so logout revokes a token
// immediately and nothing survives a restart: the signing secret is
// regenerated every time the process starts.
package sessions

import (
	"context"
	"crypto/rand"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidSession is returned for missing, expired, revoked, or foreign
// tokens.
var ErrInvalidSession = errors.New("invalid or expired session")

// Manager issues and validates session tokens.
type Manager struct {
	secret []byte
	exp    time.Duration

	mu     sync.RWMutex
	active map[string]string // session id -> username
}

// New creates a Manager with a fresh random signing secret.
func New(expiration time.Duration) (*Manager, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, err
	}
	return &Manager{
		secret: secret,
		exp:    expiration,
		active: make(map[string]string),
	}, nil
}

// Login opens a session for username and returns its bearer token.
func (m *Manager) Login(ctx context.Context, username string) (string, error) {
	sid := uuid.New().String()

	claims := jwt.MapClaims{
		"sid":      sid,
		"username": username,
		"exp":      time.Now().Add(m.exp).Unix(),
		"iat":      time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.active[sid] = username
	m.mu.Unlock()

	return token, nil
}

// Username returns the username bound to the token, or ErrInvalidSession.
func (m *Manager) Username(ctx context.Context, tokenString string) (string, error) {
	sid, username, err := m.parse(tokenString)
	if err != nil {
		return "", err
	}

	m.mu.RLock()
	registered, ok := m.active[sid]
	m.mu.RUnlock()

	if !ok || registered != username {
		return "", ErrInvalidSession
	}
	return username, nil
}

// Logout revokes the token's session. Revoking an already-invalid token is
// reported as ErrInvalidSession.
func (m *Manager) Logout(ctx context.Context, tokenString string) error {
	sid, _, err := m.parse(tokenString)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.active[sid]; !ok {
		return ErrInvalidSession
	}
	delete(m.active, sid)
	return nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization
// header.
func (m *Manager) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrInvalidSession
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidSession
	}
	return parts[1], nil
}

func (m *Manager) parse(tokenString string) (sid, username string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidSession
	}
	sid, ok = claims["sid"].(string)
	if !ok {
		return "", "", ErrInvalidSession
	}
	username, ok = claims["username"].(string)
	if !ok {
		return "", "", ErrInvalidSession
	}
	return sid, username, nil
}
