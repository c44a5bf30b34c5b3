package services

import (
	"context"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/helpers"
)

type categoryRepository interface {
	Create(ctx context.Context, category *models.Category) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetAll(ctx context.Context) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int64) error
}

// CategoryService handles category CRUD on top of the repository's
// constraint-backed uniqueness guarantees.
type CategoryService struct {
	categoryRepo categoryRepository
}

// NewCategoryService creates a new category service instance.
func NewCategoryService(categoryRepo categoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategory validates and stores a new category. Name, slug and
// rank collisions surface as conflicts from the insert itself.
func (s *CategoryService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	if !helpers.IsValidSlug(req.Slug) {
		return nil, apperrors.NewValidationError("slug must be lowercase letters, digits and hyphens")
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Rank:        req.Rank,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	if _, err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategoryByID retrieves a category by ID.
func (s *CategoryService) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// GetCategoryBySlug retrieves a category by slug. The read counts as a
// view.
func (s *CategoryService) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.categoryRepo.GetBySlug(ctx, slug)
}

// GetAllCategories returns every category in rank order.
func (s *CategoryService) GetAllCategories(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

// UpdateCategory applies a merge-patch to an existing category: only the
// fields present in the request change.
func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		if !helpers.IsValidSlug(*req.Slug) {
			return nil, apperrors.NewValidationError("slug must be lowercase letters, digits and hyphens")
		}
		category.Slug = *req.Slug
	}
	if req.Rank != nil {
		category.Rank = *req.Rank
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	if req.ImageURL != nil {
		category.ImageURL = req.ImageURL
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory removes a category. Subcategories underneath it are not
// touched; public read paths stop returning them once the parent is gone.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.categoryRepo.Delete(ctx, id)
}
