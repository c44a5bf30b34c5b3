package services

import (
	"context"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/helpers"
)

type subCategoryRepository interface {
	Create(ctx context.Context, sub *models.SubCategory) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.SubCategory, error)
	GetBySlug(ctx context.Context, slug string) (*models.SubCategory, error)
	GetAll(ctx context.Context, categoryID *int64) ([]*models.SubCategory, error)
	Update(ctx context.Context, sub *models.SubCategory) error
	Delete(ctx context.Context, id int64) error
}

type categoryGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Category, error)
}

// SubCategoryService handles subcategory CRUD. Writes verify the parent
// category exists up front; slug and sibling-rank collisions come back
// from the constraints.
type SubCategoryService struct {
	subCategoryRepo subCategoryRepository
	categoryRepo    categoryGetter
}

// NewSubCategoryService creates a new subcategory service instance.
func NewSubCategoryService(subCategoryRepo subCategoryRepository, categoryRepo categoryGetter) *SubCategoryService {
	return &SubCategoryService{
		subCategoryRepo: subCategoryRepo,
		categoryRepo:    categoryRepo,
	}
}

// CreateSubCategory validates and stores a new subcategory under an
// existing category.
func (s *SubCategoryService) CreateSubCategory(ctx context.Context, req *dto.CreateSubCategoryRequest) (*models.SubCategory, error) {
	if !helpers.IsValidSlug(req.Slug) {
		return nil, apperrors.NewValidationError("slug must be lowercase letters, digits and hyphens")
	}

	if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	sub := &models.SubCategory{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        req.Slug,
		Rank:        req.Rank,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	if _, err := s.subCategoryRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// GetSubCategoryByID retrieves a subcategory by ID.
func (s *SubCategoryService) GetSubCategoryByID(ctx context.Context, id int64) (*models.SubCategory, error) {
	return s.subCategoryRepo.GetByID(ctx, id)
}

// GetSubCategoryBySlug retrieves a subcategory by slug, counting a view.
// Subcategories whose parent category was deleted are not found.
func (s *SubCategoryService) GetSubCategoryBySlug(ctx context.Context, slug string) (*models.SubCategory, error) {
	return s.subCategoryRepo.GetBySlug(ctx, slug)
}

// GetAllSubCategories lists subcategories, optionally restricted to one
// parent category.
func (s *SubCategoryService) GetAllSubCategories(ctx context.Context, categoryID *int64) ([]*models.SubCategory, error) {
	return s.subCategoryRepo.GetAll(ctx, categoryID)
}

// UpdateSubCategory applies a merge-patch. Moving the subcategory to
// another category re-verifies the new parent.
func (s *SubCategoryService) UpdateSubCategory(ctx context.Context, id int64, req *dto.UpdateSubCategoryRequest) (*models.SubCategory, error) {
	sub, err := s.subCategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil && *req.CategoryID != sub.CategoryID {
		if _, err := s.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		sub.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		sub.Name = *req.Name
	}
	if req.Slug != nil {
		if !helpers.IsValidSlug(*req.Slug) {
			return nil, apperrors.NewValidationError("slug must be lowercase letters, digits and hyphens")
		}
		sub.Slug = *req.Slug
	}
	if req.Rank != nil {
		sub.Rank = *req.Rank
	}
	if req.Description != nil {
		sub.Description = req.Description
	}
	if req.ImageURL != nil {
		sub.ImageURL = req.ImageURL
	}

	if err := s.subCategoryRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// DeleteSubCategory removes a subcategory. Notes underneath it stay in
// storage but disappear from public listings.
func (s *SubCategoryService) DeleteSubCategory(ctx context.Context, id int64) error {
	return s.subCategoryRepo.Delete(ctx, id)
}
