package repositories

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sbilibin2017/portfolio-hub/internal/logger"
	"github.com/sbilibin2017/portfolio-hub/internal/models"
)

// FileUserRepository persists the whole user collection as one JSON array,
// rewritten on every insert and update. A mutation is written to a temporary
// file in the same directory and renamed over the original, so a crash never
// leaves a partially written collection behind.
//
// A single mutex serializes all access within this process. Two processes
// sharing one file can still lose updates to each other.
type FileUserRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileUserRepository opens (or creates) the collection file at path.
func NewFileUserRepository(path string) (*FileUserRepository, error) {
	r := &FileUserRepository{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := r.write([]models.User{}); err != nil {
			return nil, err
		}
	}

	// Fail at startup, not on first request, if the file is unreadable.
	if _, err := r.read(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *FileUserRepository) read() ([]models.User, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	if len(data) == 0 {
		return users, nil
	}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *FileUserRepository) write(users []models.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".users-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}

// Find returns the record for username, or ErrUserNotFound.
func (r *FileUserRepository) Find(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.read()
	if err != nil {
		return nil, err
	}

	username = normalizeUsername(username)
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// Insert appends a new record, failing with ErrUsernameTaken if the username
// is already present. The check and the append happen under one lock.
func (r *FileUserRepository) Insert(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.read()
	if err != nil {
		return err
	}

	user.Username = normalizeUsername(user.Username)
	for i := range users {
		if users[i].Username == user.Username {
			return ErrUsernameTaken
		}
	}

	users = append(users, user)
	err = r.write(users)

	logger.Log.Infow("file repository insert",
		"username", user.Username,
		"total", len(users),
		"error", err,
	)
	return err
}

// Update merges the non-nil fields of upd into the record and refreshes
// updated_at. Fails with ErrUserNotFound if no record matches.
func (r *FileUserRepository) Update(ctx context.Context, username string, upd models.UserUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.read()
	if err != nil {
		return err
	}

	username = normalizeUsername(username)
	for i := range users {
		if users[i].Username != username {
			continue
		}
		users[i].Apply(upd)
		users[i].UpdatedAt = time.Now().UTC()

		err = r.write(users)
		logger.Log.Infow("file repository update",
			"username", username,
			"error", err,
		)
		return err
	}

	return ErrUserNotFound
}

// Search returns every record matching a case-insensitive substring of
// username, full name, or any skill, in insertion order. An empty term
// returns all records.
func (r *FileUserRepository) Search(ctx context.Context, term string) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.read()
	if err != nil {
		return nil, err
	}

	matched := []models.User{}
	for i := range users {
		if matchesTerm(&users[i], term) {
			matched = append(matched, users[i])
		}
	}
	return matched, nil
}
