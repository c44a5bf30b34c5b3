package services

import (
	"context"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
)

// Rank counters per entity scope. Category ranks are global; subcategory
// and note ranks are scoped to their parent.
type categoryRankCounter interface {
	CountByRank(ctx context.Context, rank int, excludeID *int64) (int64, error)
}

type subCategoryRankCounter interface {
	CountByRank(ctx context.Context, categoryID int64, rank int, excludeID *int64) (int64, error)
}

type noteRankCounter interface {
	CountByRank(ctx context.Context, subCategoryID int64, rank int, excludeID *int64) (int64, error)
}

// RankService answers the advisory rank-availability preflight. The
// answer can go stale between the check and the write; the database
// constraint at write time is the authority, this only improves UX.
type RankService struct {
	categories    categoryRankCounter
	subCategories subCategoryRankCounter
	notes         noteRankCounter
}

// NewRankService creates a new RankService.
func NewRankService(categories categoryRankCounter, subCategories subCategoryRankCounter, notes noteRankCounter) *RankService {
	return &RankService{
		categories:    categories,
		subCategories: subCategories,
		notes:         notes,
	}
}

// CheckAvailability reports whether the rank is currently free for the
// given entity type. Scoped entities (subcategory, note) require a
// scopeID naming the parent; omitting it is a validation error, never a
// silent global check.
func (s *RankService) CheckAvailability(ctx context.Context, entity models.RankEntity, rank int, scopeID *int64, excludeID *int64) (bool, error) {
	if rank <= 0 {
		return false, apperrors.NewValidationError("rank must be a positive integer")
	}

	var (
		count int64
		err   error
	)

	switch entity {
	case models.RankEntityCategory:
		count, err = s.categories.CountByRank(ctx, rank, excludeID)
	case models.RankEntitySubCategory:
		if scopeID == nil {
			return false, apperrors.NewValidationError("categoryId is required when checking a subcategory rank")
		}
		count, err = s.subCategories.CountByRank(ctx, *scopeID, rank, excludeID)
	case models.RankEntityNote:
		if scopeID == nil {
			return false, apperrors.NewValidationError("subCategoryId is required when checking a note rank")
		}
		count, err = s.notes.CountByRank(ctx, *scopeID, rank, excludeID)
	default:
		return false, apperrors.NewValidationError("unknown rank entity type")
	}

	if err != nil {
		return false, err
	}

	return count == 0, nil
}
