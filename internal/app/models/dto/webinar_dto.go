package dto

import "time"

// CreateWebinarRequest represents the data needed to schedule a webinar.
type CreateWebinarRequest struct {
	Title       string    `json:"title" binding:"required,min=3,max=255" example:"Intro to Systems Design"`
	Slug        string    `json:"slug" binding:"required,min=2,max=255,slug" example:"intro-to-systems-design"`
	Description *string   `json:"description,omitempty"`
	Speaker     *string   `json:"speaker,omitempty"`
	ImageURL    *string   `json:"image,omitempty"`
	StartsAt    time.Time `json:"startsAt" binding:"required"`
}

// UpdateWebinarRequest is a merge-patch: only provided fields change.
type UpdateWebinarRequest struct {
	Title       *string    `json:"title,omitempty" binding:"omitempty,min=3,max=255"`
	Slug        *string    `json:"slug,omitempty" binding:"omitempty,min=2,max=255,slug"`
	Description *string    `json:"description,omitempty"`
	Speaker     *string    `json:"speaker,omitempty"`
	ImageURL    *string    `json:"image,omitempty"`
	StartsAt    *time.Time `json:"startsAt,omitempty"`
}

// ContactRequest is a public contact-form or content-request submission.
type ContactRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	Email        string  `json:"email" binding:"required,email"`
	Subject      *string `json:"subject,omitempty" binding:"omitempty,max=255"`
	Message      string  `json:"message" binding:"required,min=5"`
	Kind         string  `json:"kind" binding:"omitempty,oneof=contact request"`
	CaptchaToken string  `json:"captchaToken"`
}

// SignedUploadResponse is the handshake for direct client uploads.
type SignedUploadResponse struct {
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
}

// UploadResponse returns the public URL of an uploaded file.
type UploadResponse struct {
	URL string `json:"url"`
}

// DashboardStats summarises the catalog for the admin dashboard.
type DashboardStats struct {
	Users              int64 `json:"users"`
	Categories         int64 `json:"categories"`
	SubCategories      int64 `json:"subCategories"`
	Notes              int64 `json:"notes"`
	Webinars           int64 `json:"webinars"`
	UnresolvedMessages int64 `json:"unresolvedMessages"`
}
