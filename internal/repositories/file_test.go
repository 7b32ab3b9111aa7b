package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/portfolio-hub/internal/models"
)

func newFileRepo(t *testing.T) (*FileUserRepository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "users_db.json")
	repo, err := NewFileUserRepository(path)
	assert.NoError(t, err)
	return repo, path
}

func testUser(username string) models.User {
	now := time.Now().UTC()
	return models.User{
		Username:     username,
		FullName:     "Test User",
		Email:        "test@example.com",
		PasswordHash: "digest",
		Skills:       []string{},
		Projects:     []models.Project{},
		SocialLinks:  map[string]string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestFileUserRepository_InsertAndFind(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	err := repo.Insert(ctx, testUser("Alice"))
	assert.NoError(t, err)

	// Username is folded to lowercase at write time, so lookups match
	// regardless of case.
	user, err := repo.Find(ctx, "ALICE")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = repo.Find(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFileUserRepository_Insert_DuplicateUsername(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, testUser("alice")))

	err := repo.Insert(ctx, testUser("Alice"))
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// The failed insert must not have touched the existing record.
	user, err := repo.Find(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, "Test User", user.FullName)
}

func TestFileUserRepository_Update(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, testUser("alice")))
	before, err := repo.Find(ctx, "alice")
	assert.NoError(t, err)

	bio := "Gopher at large"
	skills := []string{"Go", "MongoDB"}
	err = repo.Update(ctx, "alice", models.UserUpdate{Bio: &bio, Skills: &skills})
	assert.NoError(t, err)

	after, err := repo.Find(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, "Gopher at large", after.Bio)
	assert.Equal(t, []string{"Go", "MongoDB"}, after.Skills)
	// Untouched fields survive a partial update.
	assert.Equal(t, before.FullName, after.FullName)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
}

func TestFileUserRepository_Update_UnknownUser(t *testing.T) {
	repo, _ := newFileRepo(t)

	bio := "nope"
	err := repo.Update(context.Background(), "ghost", models.UserUpdate{Bio: &bio})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFileUserRepository_Search(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	alice := testUser("alice")
	alice.FullName = "Alice A"
	alice.Skills = []string{"Python", "Go"}
	assert.NoError(t, repo.Insert(ctx, alice))

	bob := testUser("bob")
	bob.FullName = "Bob B"
	bob.Skills = []string{"Rust"}
	assert.NoError(t, repo.Insert(ctx, bob))

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "empty term returns all in insertion order", term: "", want: []string{"alice", "bob"}},
		{name: "matches skill substring", term: "py", want: []string{"alice"}},
		{name: "matches username", term: "bo", want: []string{"bob"}},
		{name: "matches full name case-insensitively", term: "ALICE A", want: []string{"alice"}},
		{name: "no match", term: "haskell", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := repo.Search(ctx, tt.term)
			assert.NoError(t, err)

			got := []string{}
			for _, u := range users {
				got = append(got, u.Username)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileUserRepository_RoundTripAcrossReopen(t *testing.T) {
	repo, path := newFileRepo(t)
	ctx := context.Background()

	user := testUser("carol")
	user.Skills = []string{"Go"}
	user.Projects = []models.Project{{Title: "Demo", Description: "A demo.", Link: "https://example.com"}}
	user.SocialLinks = map[string]string{"GitHub": "https://github.com/carol"}
	user.ProfilePic = "aGVsbG8="
	assert.NoError(t, repo.Insert(ctx, user))

	// A fresh repository over the same file sees everything that was
	// persisted, field for field.
	reopened, err := NewFileUserRepository(path)
	assert.NoError(t, err)

	got, err := reopened.Find(ctx, "carol")
	assert.NoError(t, err)
	assert.Equal(t, user.Skills, got.Skills)
	assert.Equal(t, user.Projects, got.Projects)
	assert.Equal(t, user.SocialLinks, got.SocialLinks)
	assert.Equal(t, user.ProfilePic, got.ProfilePic)
	assert.True(t, got.CreatedAt.Equal(user.CreatedAt))
}
