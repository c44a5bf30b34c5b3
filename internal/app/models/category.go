package models

import "time"

// Category is the top level of the catalog hierarchy. Name, slug and rank
// are each globally unique across all categories.
type Category struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Name        string    `json:"name" db:"name" example:"Programming"`
	Slug        string    `json:"slug" db:"slug" example:"programming"`
	Rank        int       `json:"rank" db:"rank" example:"1"`
	Description *string   `json:"description,omitempty" db:"description"`
	ImageURL    *string   `json:"image,omitempty" db:"image_url"`
	Views       int64     `json:"views" db:"views"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// SubCategory sits under a Category. The slug is globally unique; the rank
// is unique only among siblings of the same parent category.
type SubCategory struct {
	ID          int64     `json:"id" db:"id" example:"3"`
	CategoryID  int64     `json:"categoryId" db:"category_id" example:"1"`
	Name        string    `json:"name" db:"name" example:"Go"`
	Slug        string    `json:"slug" db:"slug" example:"go"`
	Rank        int       `json:"rank" db:"rank" example:"2"`
	Description *string   `json:"description,omitempty" db:"description"`
	ImageURL    *string   `json:"image,omitempty" db:"image_url"`
	Views       int64     `json:"views" db:"views"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	Category *Category `json:"category,omitempty"` // Relation, no db tag
}
