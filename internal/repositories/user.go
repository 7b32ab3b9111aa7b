// Package repositories provides two interchangeable user record stores: a
// flat JSON file rewritten wholesale on every mutation, and a MongoDB
// collection with a unique index on username. Both lowercase the username at
// write time, so lookups are case-insensitive by construction.
//
// The backends diverge in search ordering only: the file store returns
// records in insertion order, the mongo store sorts by updated_at descending.
package repositories

import (
	"errors"
	"strings"

	"github.com/sbilibin2017/portfolio-hub/internal/models"
)

// Error variables shared by both backends.
var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")
)

// normalizeUsername folds a username to its canonical stored form.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// matchesTerm reports whether the record matches a case-insensitive
// substring search over username, full name, or any skill. An empty term
// matches everything.
func matchesTerm(u *models.User, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(u.Username), term) {
		return true
	}
	if strings.Contains(strings.ToLower(u.FullName), term) {
		return true
	}
	for _, skill := range u.Skills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}
