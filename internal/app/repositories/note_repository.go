package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/dberrors"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/logger"
)

// NoteDetails is a note joined with its public author projection and the
// aggregated like count.
type NoteDetails struct {
	ID            int64     `db:"id" json:"id"`
	SubCategoryID int64     `db:"sub_category_id" json:"subCategoryId"`
	AuthorID      int64     `db:"author_id" json:"authorId"`
	Title         string    `db:"title" json:"title"`
	Slug          string    `db:"slug" json:"slug"`
	Content       string    `db:"content" json:"content"`
	Images        []string  `db:"images" json:"images"`
	Rank          *int      `db:"rank" json:"rank,omitempty"`
	IsPublished   bool      `db:"is_published" json:"isPublished"`
	Views         int64     `db:"views" json:"views"`
	LikesCount    int64     `db:"likes_count" json:"likesCount"`
	AuthorName    string    `db:"author_name" json:"authorName"`
	AuthorPicture *string   `db:"author_picture" json:"authorPicture,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// ListNotesParams holds parameters for filtering and pagination.
type ListNotesParams struct {
	SubCategoryID *int64
	PublishedOnly bool
	Page          int
	Size          int
}

// NoteRepository handles database operations for notes, likes and
// download tracking.
type NoteRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(db *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func noteConflict(err error) error {
	switch dberrors.ConstraintName(err) {
	case "notes_slug_key":
		return apperrors.NewConflictError("note slug already in use")
	case "notes_sub_category_id_rank_idx":
		return apperrors.NewConflictError("rank already assigned to another note of this subcategory")
	}
	return apperrors.NewConflictError("note violates a uniqueness constraint")
}

// selectNoteDetailsQuery builds the common select with the author join
// and the like-count subquery.
func (r *NoteRepository) selectNoteDetailsQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"n.id", "n.sub_category_id", "n.author_id", "n.title", "n.slug", "n.content",
		"n.images", "n.rank", "n.is_published", "n.views",
		"(SELECT COUNT(*) FROM note_likes nl WHERE nl.note_id = n.id) AS likes_count",
		"u.name AS author_name", "u.picture_url AS author_picture",
		"n.created_at", "n.updated_at",
	).From("notes n").
		Join("users u ON n.author_id = u.id")
}

func scanNoteDetails(row pgx.Row) (*NoteDetails, error) {
	var note NoteDetails
	err := row.Scan(
		&note.ID, &note.SubCategoryID, &note.AuthorID, &note.Title, &note.Slug, &note.Content,
		&note.Images, &note.Rank, &note.IsPublished, &note.Views,
		&note.LikesCount, &note.AuthorName, &note.AuthorPicture,
		&note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Create inserts a new note.
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) (int64, error) {
	sql, args, err := r.sb.Insert("notes").
		Columns("sub_category_id", "author_id", "title", "slug", "content", "images", "rank", "is_published").
		Values(note.SubCategoryID, note.AuthorID, note.Title, note.Slug, note.Content, note.Images, note.Rank, note.IsPublished).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create note query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, noteConflict(err)
		}
		logger.Error().Err(err).Msg("Error executing create note query")
		return 0, fmt.Errorf("error creating note: %w", err)
	}

	return note.ID, nil
}

// GetByID retrieves a note by ID regardless of publish state; visibility
// of unpublished notes is decided by the service layer.
func (r *NoteRepository) GetByID(ctx context.Context, id int64) (*NoteDetails, error) {
	sqlStr, args, err := r.selectNoteDetailsQuery().
		Where(squirrel.Eq{"n.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get note query: %w", err)
	}

	note, err := scanNoteDetails(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoteNotFound
		}
		logger.Error().Err(err).Int64("noteID", id).Msg("Error scanning note row")
		return nil, fmt.Errorf("error getting note by ID: %w", err)
	}

	return note, nil
}

// noteParentExists hides notes orphaned by a subcategory delete. The
// hierarchy edge carries no foreign key, so readers filter instead.
const noteParentExists = "EXISTS (SELECT 1 FROM sub_categories sc WHERE sc.id = n.sub_category_id)"

// bumpNoteViews counts a view on the public slug read. It matches only
/// notes the read itself would serve: published, parent still present.
const bumpNoteViews = `
	UPDATE notes n SET views = views + 1
	WHERE n.slug = $1 AND n.is_published
	  AND EXISTS (SELECT 1 FROM sub_categories sc WHERE sc.id = n.sub_category_id)`

// publishedNoteBySlugQuery builds the public by-slug read: published
// notes only, orphans invisible.
func (r *NoteRepository) publishedNoteBySlugQuery(slug string) squirrel.SelectBuilder {
	return r.selectNoteDetailsQuery().
		Where(squirrel.Eq{"n.slug": slug, "n.is_published": true}).
		Where(noteParentExists).
		Limit(1)
}

// GetBySlug retrieves a published note by slug and atomically increments
// its view counter. Notes whose subcategory was deleted are not found.
func (r *NoteRepository) GetBySlug(ctx context.Context, slug string) (*NoteDetails, error) {
	cmdTag, err := r.db.Exec(ctx, bumpNoteViews, slug)
	if err != nil {
		logger.Error().Err(err).Str("slug", slug).Msg("Error incrementing note views")
		return nil, fmt.Errorf("error incrementing note views: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrNoteNotFound
	}

	sqlStr, args, err := r.publishedNoteBySlugQuery(slug).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get note by slug query: %w", err)
	}

	note, err := scanNoteDetails(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("error getting note by slug: %w", err)
	}

	return note, nil
}

// listQuery applies the shared filters for List and Count. Public
// listings hide notes whose subcategory has been deleted.
func (r *NoteRepository) applyListFilters(builder squirrel.SelectBuilder, params ListNotesParams) squirrel.SelectBuilder {
	builder = builder.Join("sub_categories sc ON n.sub_category_id = sc.id")
	if params.SubCategoryID != nil {
		builder = builder.Where(squirrel.Eq{"n.sub_category_id": *params.SubCategoryID})
	}
	if params.PublishedOnly {
		builder = builder.Where(squirrel.Eq{"n.is_published": true})
	}
	return builder
}

// List returns one page of notes sorted by rank (ranked notes first),
// then recency.
func (r *NoteRepository) List(ctx context.Context, params ListNotesParams) ([]*NoteDetails, error) {
	offset, limit := listOffsetLimit(params.Page, params.Size)

	builder := r.applyListFilters(r.selectNoteDetailsQuery(), params).
		OrderBy("n.rank ASC NULLS LAST", "n.created_at DESC").
		Offset(offset).
		Limit(uint64(limit))

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list notes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list notes query")
		return nil, fmt.Errorf("error querying notes: %w", err)
	}
	defer rows.Close()

	notes := []*NoteDetails{}
	for rows.Next() {
		note, err := scanNoteDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning note row: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}

	return notes, nil
}

// Count returns the total number of notes matching the list filters.
func (r *NoteRepository) Count(ctx context.Context, params ListNotesParams) (int64, error) {
	builder := r.applyListFilters(r.sb.Select("COUNT(*)").From("notes n"), params)

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count notes query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting notes")
		return 0, fmt.Errorf("error counting notes: %w", err)
	}

	return count, nil
}

// Update replaces the mutable columns of an existing note. The author
// column is never touched; authorship is immutable after creation.
func (r *NoteRepository) Update(ctx context.Context, note *models.Note) error {
	sql, args, err := r.sb.Update("notes").
		SetMap(map[string]interface{}{
			"sub_category_id": note.SubCategoryID,
			"title":           note.Title,
			"slug":            note.Slug,
			"content":         note.Content,
			"images":          note.Images,
			"rank":            note.Rank,
			"is_published":    note.IsPublished,
			"updated_at":      squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"id": note.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update note query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return noteConflict(err)
		}
		logger.Error().Err(err).Int64("noteID", note.ID).Msg("Error executing update note query")
		return fmt.Errorf("error updating note: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}

	return nil
}

// Delete removes a note by ID. Like rows cascade with it.
func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("notes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete note query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("noteID", id).Msg("Error executing delete note query")
		return fmt.Errorf("error deleting note: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}

	return nil
}

// GetOwnerID returns the author of a note for ownership checks.
func (r *NoteRepository) GetOwnerID(ctx context.Context, id int64) (int64, error) {
	var ownerID int64
	err := r.db.QueryRow(ctx, "SELECT author_id FROM notes WHERE id = $1", id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNoteNotFound
		}
		logger.Error().Err(err).Int64("noteID", id).Msg("Error fetching note owner")
		return 0, fmt.Errorf("error fetching note owner: %w", err)
	}
	return ownerID, nil
}

// ToggleLike flips the (user, note) like inside a single transaction and
// returns the resulting state. One like row is both sides of the
// relation, so the note's like set and the user's liked set cannot
// diverge.
func (r *NoteRepository) ToggleLike(ctx context.Context, noteID, userID int64) (bool, int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, 0, fmt.Errorf("failed to begin like transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, "DELETE FROM note_likes WHERE note_id = $1 AND user_id = $2", noteID, userID)
	if err != nil {
		return false, 0, fmt.Errorf("error removing like: %w", err)
	}

	liked := false
	if cmdTag.RowsAffected() == 0 {
		_, err = tx.Exec(ctx, "INSERT INTO note_likes (note_id, user_id) VALUES ($1, $2)", noteID, userID)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return false, 0, apperrors.ErrNoteNotFound
			}
			return false, 0, fmt.Errorf("error adding like: %w", err)
		}
		liked = true
	}

	var count int64
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM note_likes WHERE note_id = $1", noteID).Scan(&count); err != nil {
		return false, 0, fmt.Errorf("error counting likes: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, 0, fmt.Errorf("failed to commit like transaction: %w", err)
	}

	return liked, count, nil
}

// LikedNoteIDs returns the ids of notes the user has liked.
func (r *NoteRepository) LikedNoteIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, "SELECT note_id FROM note_likes WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("error querying liked notes: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning liked note id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// CountByRank counts ranked notes of one subcategory holding the given
// rank, optionally excluding one id. Unranked notes never collide.
func (r *NoteRepository) CountByRank(ctx context.Context, subCategoryID int64, rank int, excludeID *int64) (int64, error) {
	builder := r.sb.Select("COUNT(*)").
		From("notes").
		Where(squirrel.Eq{"sub_category_id": subCategoryID, "rank": rank})
	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count notes by rank query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int("rank", rank).Int64("subCategoryID", subCategoryID).Msg("Error counting notes by rank")
		return 0, fmt.Errorf("error counting notes by rank: %w", err)
	}

	return count, nil
}

// listOffsetLimit converts a 1-based page and size into a SQL offset and
// limit, clamping out-of-range sizes to the default.
func listOffsetLimit(page, size int) (uint64, int) {
	const (
		defaultSize = 10
		maxSize     = 100
	)
	if size <= 0 || size > maxSize {
		size = defaultSize
	}
	if page < 1 {
		page = 1
	}
	return uint64((page - 1) * size), size
}
