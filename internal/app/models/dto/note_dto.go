package dto

import (
	"time"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
)

// --- Request DTOs ---

// CreateNoteRequest represents the data needed to publish a note. The
// author is always the authenticated creator; it is not part of the payload.
type CreateNoteRequest struct {
	SubCategoryID int64    `json:"subCategoryId" binding:"required,gt=0" example:"3"`
	Title         string   `json:"title" binding:"required,min=3,max=255" example:"Goroutines and Channels"`
	Slug          string   `json:"slug" binding:"required,min=2,max=255,slug" example:"goroutines-and-channels"`
	Content       string   `json:"content" binding:"required,min=10"`
	Images        []string `json:"images,omitempty"`
	Rank          *int     `json:"rank,omitempty" binding:"omitempty,gt=0"`
	IsPublished   bool     `json:"isPublished"`
}

// UpdateNoteRequest is a merge-patch: only provided fields change. Any
// authorId present in the raw payload is ignored.
type UpdateNoteRequest struct {
	SubCategoryID *int64    `json:"subCategoryId,omitempty" binding:"omitempty,gt=0"`
	Title         *string   `json:"title,omitempty" binding:"omitempty,min=3,max=255"`
	Slug          *string   `json:"slug,omitempty" binding:"omitempty,min=2,max=255,slug"`
	Content       *string   `json:"content,omitempty" binding:"omitempty,min=10"`
	Images        *[]string `json:"images,omitempty"`
	Rank          *int      `json:"rank,omitempty" binding:"omitempty,gt=0"`
	IsPublished   *bool     `json:"isPublished,omitempty"`
}

// LikeResponse reports the state after a toggle.
type LikeResponse struct {
	LikesCount int64 `json:"likesCount" example:"4"`
	IsLiked    bool  `json:"isLiked" example:"true"`
}

// DownloadRequest records that the caller downloaded a note.
type DownloadRequest struct {
	NoteID int64  `json:"noteId" binding:"required,gt=0" example:"10"`
	Slug   string `json:"slug" binding:"required" example:"goroutines-and-channels"`
}

// --- Response DTOs ---

// NoteResponse is the public projection of a note. The author appears as
// {name, image} only.
type NoteResponse struct {
	ID            int64                 `json:"id"`
	SubCategoryID int64                 `json:"subCategoryId"`
	Title         string                `json:"title"`
	Slug          string                `json:"slug"`
	Content       string                `json:"content"`
	Images        []string              `json:"images"`
	Rank          *int                  `json:"rank,omitempty"`
	IsPublished   bool                  `json:"isPublished"`
	Views         int64                 `json:"views"`
	LikesCount    int64                 `json:"likesCount"`
	Author        *models.AuthorSummary `json:"author,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// NoteListResponse is a page of notes with pagination metadata.
type NoteListResponse struct {
	Notes      []NoteResponse `json:"notes"`
	Pagination PaginationInfo `json:"pagination"`
}
