package models

import "time"

// Webinar is a scheduled online session users can join.
type Webinar struct {
	ID          int64     `json:"id" db:"id" example:"5"`
	Title       string    `json:"title" db:"title" example:"Intro to Systems Design"`
	Slug        string    `json:"slug" db:"slug" example:"intro-to-systems-design"`
	Description *string   `json:"description,omitempty" db:"description"`
	Speaker     *string   `json:"speaker,omitempty" db:"speaker"`
	ImageURL    *string   `json:"image,omitempty" db:"image_url"`
	StartsAt    time.Time `json:"startsAt" db:"starts_at"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// WebinarAttendee is a join record between a webinar and a user, enriched
// with the attendee's identity for listing and CSV export.
type WebinarAttendee struct {
	WebinarID int64     `json:"webinarId" db:"webinar_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	JoinedAt  time.Time `json:"joinedAt" db:"joined_at"`
}

// ContactMessage is an inbox entry from the public contact/request form.
type ContactMessage struct {
	ID        int64       `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Email     string      `json:"email" db:"email"`
	Subject   *string     `json:"subject,omitempty" db:"subject"`
	Message   string      `json:"message" db:"message"`
	Kind      MessageKind `json:"kind" db:"kind"`
	Resolved  bool        `json:"resolved" db:"resolved"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
}
