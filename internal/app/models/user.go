package models

import (
	"time"
)

// User defines the user model based on the 'users' table. Accounts are
// provisioned on first Google login; there is no local password.
type User struct {
	ID          int64             `json:"id" db:"id" example:"1"`
	Email       string            `json:"email" db:"email" example:"user@example.com"`
	Name        string            `json:"name" db:"name" example:"Jane Doe"`
	PictureURL  *string           `json:"pictureUrl,omitempty" db:"picture_url"`
	Role        Role              `json:"role" db:"role" example:"user"`
	Bio         *string           `json:"bio,omitempty" db:"bio"`
	Socials     map[string]string `json:"socials,omitempty" db:"socials"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at"`
	LastLoginAt *time.Time        `json:"lastLoginAt,omitempty" db:"last_login_at"`
}

// AuthorSummary is the public projection of a note author. Listings expose
// only the display name and picture, never the email or role.
type AuthorSummary struct {
	Name       string  `json:"name" example:"Jane Doe"`
	PictureURL *string `json:"image,omitempty"`
}

// Download records a note download by a user, at most once per note.
type Download struct {
	NoteID       int64     `json:"noteId" db:"note_id"`
	Slug         string    `json:"slug" db:"slug"`
	DownloadedAt time.Time `json:"downloadedAt" db:"downloaded_at"`
}
