package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/dberrors"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/logger"
)

// CategoryRepository handles category database operations
type CategoryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// categoryConflict translates a unique violation into a conflict error
// naming the colliding field. The constraint is the source of truth; the
// advisory preflight check may have raced with another writer.
func categoryConflict(err error) error {
	switch dberrors.ConstraintName(err) {
	case "categories_name_key":
		return apperrors.NewConflictError("category name already in use")
	case "categories_slug_key":
		return apperrors.NewConflictError("category slug already in use")
	case "categories_rank_key":
		return apperrors.NewConflictError("rank already assigned to another category")
	}
	return apperrors.NewConflictError("category violates a uniqueness constraint")
}

const categoryColumns = "id, name, slug, rank, description, image_url, views, created_at, updated_at"

func scanCategory(row pgx.Row) (*models.Category, error) {
	c := &models.Category{}
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Rank, &c.Description, &c.ImageURL, &c.Views, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new category. Uniqueness of name, slug and rank is
// enforced by the database; a violation surfaces as a Conflict error and
// nothing is inserted.
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) (int64, error) {
	sql, args, err := r.sb.Insert("categories").
		Columns("name", "slug", "rank", "description", "image_url").
		Values(category.Name, category.Slug, category.Rank, category.Description, category.ImageURL).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create category query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, categoryConflict(err)
		}
		logger.Error().Err(err).Msg("Error executing create category query")
		return 0, fmt.Errorf("error creating category: %w", err)
	}

	return category.ID, nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	sql, args, err := r.sb.Select(categoryColumns).
		From("categories").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get category query: %w", err)
	}

	category, err := scanCategory(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		logger.Error().Err(err).Int64("categoryID", id).Msg("Error scanning category row")
		return nil, fmt.Errorf("error getting category by ID: %w", err)
	}

	return category, nil
}

// GetBySlug retrieves a category by slug and atomically increments its
// view counter.
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	sql := `UPDATE categories SET views = views + 1 WHERE slug = $1
		RETURNING ` + categoryColumns

	category, err := scanCategory(r.db.QueryRow(ctx, sql, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		logger.Error().Err(err).Str("slug", slug).Msg("Error fetching category by slug")
		return nil, fmt.Errorf("error getting category by slug: %w", err)
	}

	return category, nil
}

// GetAll retrieves all categories ordered by rank
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*models.Category, error) {
	sql, args, err := r.sb.Select(categoryColumns).
		From("categories").
		OrderBy("rank ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all categories query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all categories query")
		return nil, fmt.Errorf("error querying categories: %w", err)
	}
	defer rows.Close()

	categories := []*models.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning category row: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return categories, nil
}

// Update replaces the mutable columns of an existing category. The caller
// provides the fully merged document; uniqueness is re-validated by the
// same constraints that guard inserts.
func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	sql, args, err := r.sb.Update("categories").
		SetMap(map[string]interface{}{
			"name":        category.Name,
			"slug":        category.Slug,
			"rank":        category.Rank,
			"description": category.Description,
			"image_url":   category.ImageURL,
			"updated_at":  squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"id": category.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update category query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return categoryConflict(err)
		}
		logger.Error().Err(err).Int64("categoryID", category.ID).Msg("Error executing update category query")
		return fmt.Errorf("error updating category: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category by ID. Children are not cascaded and sibling
// ranks are not renumbered; a gap in the rank sequence is a legitimate
// permanent state.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("categories").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete category query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("categoryID", id).Msg("Error executing delete category query")
		return fmt.Errorf("error deleting category: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCategoryNotFound
	}

	return nil
}

// CountByRank counts categories holding the given rank, optionally
// excluding one id (the document being edited).
func (r *CategoryRepository) CountByRank(ctx context.Context, rank int, excludeID *int64) (int64, error) {
	builder := r.sb.Select("COUNT(*)").
		From("categories").
		Where(squirrel.Eq{"rank": rank})
	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count categories by rank query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int("rank", rank).Msg("Error counting categories by rank")
		return 0, fmt.Errorf("error counting categories by rank: %w", err)
	}

	return count, nil
}
