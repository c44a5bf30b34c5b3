package models

import "time"

// Note is the leaf of the catalog hierarchy. The slug is globally unique.
// Rank is optional; when present it is unique among notes of the same
// subcategory (unranked notes are unconstrained).
type Note struct {
	ID            int64     `json:"id" db:"id" example:"10"`
	SubCategoryID int64     `json:"subCategoryId" db:"sub_category_id" example:"3"`
	AuthorID      int64     `json:"authorId" db:"author_id" example:"1"`
	Title         string    `json:"title" db:"title" example:"Goroutines and Channels"`
	Slug          string    `json:"slug" db:"slug" example:"goroutines-and-channels"`
	Content       string    `json:"content" db:"content"`
	Images        []string  `json:"images" db:"images"`
	Rank          *int      `json:"rank,omitempty" db:"rank"`
	IsPublished   bool      `json:"isPublished" db:"is_published"`
	Views         int64     `json:"views" db:"views"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	Author *AuthorSummary `json:"author,omitempty"` // Relation, no db tag
}
