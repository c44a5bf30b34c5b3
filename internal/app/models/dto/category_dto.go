package dto

// --- Request DTOs ---

// CreateCategoryRequest represents the data needed to create a category.
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100" example:"Programming"`
	Slug        string  `json:"slug" binding:"required,min=2,max=100,slug" example:"programming"`
	Rank        int     `json:"rank" binding:"required,gt=0" example:"1"`
	Description *string `json:"description,omitempty" example:"Everything about writing software"`
	ImageURL    *string `json:"image,omitempty"`
}

// UpdateCategoryRequest is a merge-patch: only provided fields change.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Slug        *string `json:"slug,omitempty" binding:"omitempty,min=2,max=100,slug"`
	Rank        *int    `json:"rank,omitempty" binding:"omitempty,gt=0"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image,omitempty"`
}

// CreateSubCategoryRequest represents the data needed to create a subcategory.
type CreateSubCategoryRequest struct {
	CategoryID  int64   `json:"categoryId" binding:"required,gt=0" example:"1"`
	Name        string  `json:"name" binding:"required,min=2,max=100" example:"Go"`
	Slug        string  `json:"slug" binding:"required,min=2,max=100,slug" example:"go"`
	Rank        int     `json:"rank" binding:"required,gt=0" example:"2"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image,omitempty"`
}

// UpdateSubCategoryRequest is a merge-patch: only provided fields change.
type UpdateSubCategoryRequest struct {
	CategoryID  *int64  `json:"categoryId,omitempty" binding:"omitempty,gt=0"`
	Name        *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Slug        *string `json:"slug,omitempty" binding:"omitempty,min=2,max=100,slug"`
	Rank        *int    `json:"rank,omitempty" binding:"omitempty,gt=0"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image,omitempty"`
}

// RankAvailabilityResponse is the advisory preflight result. A write may
// still fail with a conflict afterwards; the constraint at write time is
// authoritative.
type RankAvailabilityResponse struct {
	Available bool `json:"available" example:"true"`
}
