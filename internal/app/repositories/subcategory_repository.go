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

// SubCategoryRepository handles subcategory database operations
type SubCategoryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubCategoryRepository creates a new SubCategoryRepository
func NewSubCategoryRepository(db *pgxpool.Pool) *SubCategoryRepository {
	return &SubCategoryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// subCategoryConflict names the colliding field based on the violated
// constraint. The slug is globally unique; the rank only among siblings.
func subCategoryConflict(err error) error {
	switch dberrors.ConstraintName(err) {
	case "sub_categories_slug_key":
		return apperrors.NewConflictError("subcategory slug already in use")
	case "sub_categories_category_id_rank_key":
		return apperrors.NewConflictError("rank already assigned to another subcategory of this category")
	}
	return apperrors.NewConflictError("subcategory violates a uniqueness constraint")
}

const subCategoryColumns = "id, category_id, name, slug, rank, description, image_url, views, created_at, updated_at"

func scanSubCategory(row pgx.Row) (*models.SubCategory, error) {
	s := &models.SubCategory{}
	err := row.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Slug, &s.Rank, &s.Description, &s.ImageURL, &s.Views, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new subcategory.
func (r *SubCategoryRepository) Create(ctx context.Context, sub *models.SubCategory) (int64, error) {
	sql, args, err := r.sb.Insert("sub_categories").
		Columns("category_id", "name", "slug", "rank", "description", "image_url").
		Values(sub.CategoryID, sub.Name, sub.Slug, sub.Rank, sub.Description, sub.ImageURL).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create subcategory query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, subCategoryConflict(err)
		}
		logger.Error().Err(err).Msg("Error executing create subcategory query")
		return 0, fmt.Errorf("error creating subcategory: %w", err)
	}

	return sub.ID, nil
}

// GetByID retrieves a subcategory by ID
func (r *SubCategoryRepository) GetByID(ctx context.Context, id int64) (*models.SubCategory, error) {
	sql, args, err := r.sb.Select(subCategoryColumns).
		From("sub_categories").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get subcategory query: %w", err)
	}

	sub, err := scanSubCategory(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubCategoryNotFound
		}
		logger.Error().Err(err).Int64("subCategoryID", id).Msg("Error scanning subcategory row")
		return nil, fmt.Errorf("error getting subcategory by ID: %w", err)
	}

	return sub, nil
}

// GetBySlug retrieves a subcategory by slug and atomically increments its
// view counter. Subcategories whose parent category no longer exists are
// invisible on this public read path.
func (r *SubCategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.SubCategory, error) {
	sql := `UPDATE sub_categories sc SET views = views + 1
		WHERE sc.slug = $1
		  AND EXISTS (SELECT 1 FROM categories c WHERE c.id = sc.category_id)
		RETURNING ` + subCategoryColumns

	sub, err := scanSubCategory(r.db.QueryRow(ctx, sql, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubCategoryNotFound
		}
		logger.Error().Err(err).Str("slug", slug).Msg("Error fetching subcategory by slug")
		return nil, fmt.Errorf("error getting subcategory by slug: %w", err)
	}

	return sub, nil
}

// GetAll retrieves subcategories ordered by rank, optionally filtered by
// parent category. Orphans (parent deleted) are filtered out.
func (r *SubCategoryRepository) GetAll(ctx context.Context, categoryID *int64) ([]*models.SubCategory, error) {
	builder := r.sb.Select(
		"sc.id", "sc.category_id", "sc.name", "sc.slug", "sc.rank",
		"sc.description", "sc.image_url", "sc.views", "sc.created_at", "sc.updated_at",
	).
		From("sub_categories sc").
		Join("categories c ON sc.category_id = c.id").
		OrderBy("sc.rank ASC")
	if categoryID != nil {
		builder = builder.Where(squirrel.Eq{"sc.category_id": *categoryID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all subcategories query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all subcategories query")
		return nil, fmt.Errorf("error querying subcategories: %w", err)
	}
	defer rows.Close()

	subs := []*models.SubCategory{}
	for rows.Next() {
		sub, err := scanSubCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning subcategory row: %w", err)
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subcategory rows: %w", err)
	}

	return subs, nil
}

// Update replaces the mutable columns of an existing subcategory.
func (r *SubCategoryRepository) Update(ctx context.Context, sub *models.SubCategory) error {
	sql, args, err := r.sb.Update("sub_categories").
		SetMap(map[string]interface{}{
			"category_id": sub.CategoryID,
			"name":        sub.Name,
			"slug":        sub.Slug,
			"rank":        sub.Rank,
			"description": sub.Description,
			"image_url":   sub.ImageURL,
			"updated_at":  squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"id": sub.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update subcategory query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return subCategoryConflict(err)
		}
		logger.Error().Err(err).Int64("subCategoryID", sub.ID).Msg("Error executing update subcategory query")
		return fmt.Errorf("error updating subcategory: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubCategoryNotFound
	}

	return nil
}

// Delete removes a subcategory by ID without cascading to notes.
func (r *SubCategoryRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("sub_categories").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete subcategory query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subCategoryID", id).Msg("Error executing delete subcategory query")
		return fmt.Errorf("error deleting subcategory: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubCategoryNotFound
	}

	return nil
}

// CountByRank counts subcategories of one category holding the given
// rank, optionally excluding one id.
func (r *SubCategoryRepository) CountByRank(ctx context.Context, categoryID int64, rank int, excludeID *int64) (int64, error) {
	builder := r.sb.Select("COUNT(*)").
		From("sub_categories").
		Where(squirrel.Eq{"category_id": categoryID, "rank": rank})
	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count subcategories by rank query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int("rank", rank).Int64("categoryID", categoryID).Msg("Error counting subcategories by rank")
		return 0, fmt.Errorf("error counting subcategories by rank: %w", err)
	}

	return count, nil
}
