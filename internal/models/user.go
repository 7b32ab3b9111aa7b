package models

import "time"

// Project is a single portfolio entry.
type Project struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Link        string `json:"link" bson:"link"`
}

// User represents one user's full portfolio record. The username is the
// unique lookup key and is stored lowercased. ProfilePic holds the picture
// as base64 text; empty means no picture.
type User struct {
	Username     string            `json:"username" bson:"username"`
	FullName     string            `json:"full_name" bson:"full_name"`
	Email        string            `json:"email" bson:"email"`
	PasswordHash string            `json:"password_hash" bson:"password_hash"`
	Bio          string            `json:"bio" bson:"bio"`
	Skills       []string          `json:"skills" bson:"skills"`
	Projects     []Project         `json:"projects" bson:"projects"`
	SocialLinks  map[string]string `json:"social_links" bson:"social_links"`
	ProfilePic   string            `json:"profile_pic,omitempty" bson:"profile_pic,omitempty"`
	CreatedAt    time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" bson:"updated_at"`
}

// Profile is the public projection of a User: every field except the
// password digest. All read paths that leave the service return Profile,
// never User.
type Profile struct {
	Username    string            `json:"username"`
	FullName    string            `json:"full_name"`
	Email       string            `json:"email"`
	Bio         string            `json:"bio"`
	Skills      []string          `json:"skills"`
	Projects    []Project         `json:"projects"`
	SocialLinks map[string]string `json:"social_links"`
	ProfilePic  string            `json:"profile_pic,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Profile strips the password digest from the record.
func (u *User) Profile() Profile {
	return Profile{
		Username:    u.Username,
		FullName:    u.FullName,
		Email:       u.Email,
		Bio:         u.Bio,
		Skills:      u.Skills,
		Projects:    u.Projects,
		SocialLinks: u.SocialLinks,
		ProfilePic:  u.ProfilePic,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// UserUpdate carries a partial update of a record. Nil fields are left
// untouched. These are the only recognized update keys; username, email,
// password_hash and the timestamps cannot be changed through an update.
type UserUpdate struct {
	FullName    *string
	Bio         *string
	Skills      *[]string
	Projects    *[]Project
	SocialLinks *map[string]string
	ProfilePic  *string
}

// Apply merges the non-nil fields of upd into the record. The caller is
// responsible for refreshing UpdatedAt.
func (u *User) Apply(upd UserUpdate) {
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.Skills != nil {
		u.Skills = *upd.Skills
	}
	if upd.Projects != nil {
		u.Projects = *upd.Projects
	}
	if upd.SocialLinks != nil {
		u.SocialLinks = *upd.SocialLinks
	}
	if upd.ProfilePic != nil {
		u.ProfilePic = *upd.ProfilePic
	}
}
