package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"strings"

	// Accepted profile picture formats.
	_ "image/jpeg"
	_ "image/png"

	"github.com/sbilibin2017/portfolio-hub/internal/models"
)

// Error variables
var (
	ErrNotOwner         = errors.New("portfolio can only be edited by its owner")
	ErrUnsupportedImage = errors.New("unsupported image format")
)

// socialPlatforms is the closed set of recognized social link keys.
var socialPlatforms = []string{"GitHub", "LinkedIn", "Website"}

// UserSearcher defines the search operation over the store. Result ordering
// follows the backend: insertion order for the file store, most recently
// updated first for the document store.
type UserSearcher interface {
	Search(ctx context.Context, term string) ([]models.User, error)
}

// UserUpdater defines the partial-update operation.
type UserUpdater interface {
	Update(ctx context.Context, username string, upd models.UserUpdate) error
}

// UpdateInput is one edit-and-save submission. Nil fields are left
// untouched. Skills arrive as a single comma-separated string, the way the
// edit form collects them.
type UpdateInput struct {
	FullName    *string
	Bio         *string
	Skills      *string
	Projects    *[]models.Project
	SocialLinks map[string]string
}

// PortfolioService handles browsing, searching, and editing portfolios.
type PortfolioService struct {
	finder   UserFinder
	searcher UserSearcher
	updater  UserUpdater
}

// NewPortfolioService creates a new PortfolioService instance.
func NewPortfolioService(finder UserFinder, searcher UserSearcher, updater UserUpdater) *PortfolioService {
	return &PortfolioService{
		finder:   finder,
		searcher: searcher,
		updater:  updater,
	}
}

// Search returns the public profiles matching term. The password digest is
// never part of a result.
func (svc *PortfolioService) Search(ctx context.Context, term string) ([]models.Profile, error) {
	users, err := svc.searcher.Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, err
	}

	profiles := make([]models.Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}
	return profiles, nil
}

// Get returns one public profile by username.
func (svc *PortfolioService) Get(ctx context.Context, username string) (models.Profile, error) {
	user, err := svc.finder.Find(ctx, username)
	if err != nil {
		return models.Profile{}, err
	}
	return user.Profile(), nil
}

// Update applies an edit-and-save submission to the target portfolio. The
// acting user must be the target user, regardless of what the client put in
// the payload or the URL.
func (svc *PortfolioService) Update(ctx context.Context, actor, target string, in UpdateInput) error {
	if !strings.EqualFold(strings.TrimSpace(actor), strings.TrimSpace(target)) {
		return ErrNotOwner
	}

	upd := models.UserUpdate{
		Bio:      in.Bio,
		Projects: in.Projects,
	}
	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		upd.FullName = &name
	}
	if in.Skills != nil {
		skills := ParseSkills(*in.Skills)
		upd.Skills = &skills
	}
	if in.SocialLinks != nil {
		links := map[string]string{}
		for _, platform := range socialPlatforms {
			if v, ok := in.SocialLinks[platform]; ok {
				links[platform] = strings.TrimSpace(v)
			}
		}
		upd.SocialLinks = &links
	}

	return svc.updater.Update(ctx, target, upd)
}

// SetProfilePicture validates that the bytes decode as png or jpeg and
// stores them base64-encoded on the target record. Only the owner may
// change their picture.
func (svc *PortfolioService) SetProfilePicture(ctx context.Context, actor, target string, img []byte) error {
	if !strings.EqualFold(strings.TrimSpace(actor), strings.TrimSpace(target)) {
		return ErrNotOwner
	}

	if _, format, err := image.DecodeConfig(bytes.NewReader(img)); err != nil || (format != "png" && format != "jpeg") {
		return ErrUnsupportedImage
	}

	encoded := base64.StdEncoding.EncodeToString(img)
	return svc.updater.Update(ctx, target, models.UserUpdate{ProfilePic: &encoded})
}

// ParseSkills splits a comma-separated skill list, trims each entry, and
// drops empties, preserving order.
func ParseSkills(raw string) []string {
	skills := []string{}
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
