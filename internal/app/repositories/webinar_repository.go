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

const webinarColumns = "id, title, slug, description, speaker, image_url, starts_at, created_at, updated_at"

// WebinarRepository handles database operations for webinars and their
// attendee lists.
type WebinarRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewWebinarRepository creates a new WebinarRepository.
func NewWebinarRepository(db *pgxpool.Pool) *WebinarRepository {
	return &WebinarRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanWebinar(row pgx.Row) (*models.Webinar, error) {
	var w models.Webinar
	err := row.Scan(
		&w.ID, &w.Title, &w.Slug, &w.Description, &w.Speaker, &w.ImageURL,
		&w.StartsAt, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create inserts a new webinar.
func (r *WebinarRepository) Create(ctx context.Context, webinar *models.Webinar) (int64, error) {
	sql, args, err := r.sb.Insert("webinars").
		Columns("title", "slug", "description", "speaker", "image_url", "starts_at").
		Values(webinar.Title, webinar.Slug, webinar.Description, webinar.Speaker, webinar.ImageURL, webinar.StartsAt).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create webinar query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&webinar.ID, &webinar.CreatedAt, &webinar.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewConflictError("webinar slug already in use")
		}
		logger.Error().Err(err).Msg("Error executing create webinar query")
		return 0, fmt.Errorf("error creating webinar: %w", err)
	}

	return webinar.ID, nil
}

// GetByID retrieves a webinar by ID.
func (r *WebinarRepository) GetByID(ctx context.Context, id int64) (*models.Webinar, error) {
	w, err := scanWebinar(r.db.QueryRow(ctx, "SELECT "+webinarColumns+" FROM webinars WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrWebinarNotFound
		}
		return nil, fmt.Errorf("error getting webinar by ID: %w", err)
	}
	return w, nil
}

// GetBySlug retrieves a webinar by slug.
func (r *WebinarRepository) GetBySlug(ctx context.Context, slug string) (*models.Webinar, error) {
	w, err := scanWebinar(r.db.QueryRow(ctx, "SELECT "+webinarColumns+" FROM webinars WHERE slug = $1", slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrWebinarNotFound
		}
		return nil, fmt.Errorf("error getting webinar by slug: %w", err)
	}
	return w, nil
}

// GetAll returns all webinars sorted soonest first.
func (r *WebinarRepository) GetAll(ctx context.Context) ([]*models.Webinar, error) {
	rows, err := r.db.Query(ctx, "SELECT "+webinarColumns+" FROM webinars ORDER BY starts_at ASC")
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list webinars query")
		return nil, fmt.Errorf("error querying webinars: %w", err)
	}
	defer rows.Close()

	webinars := []*models.Webinar{}
	for rows.Next() {
		w, err := scanWebinar(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning webinar row: %w", err)
		}
		webinars = append(webinars, w)
	}

	return webinars, rows.Err()
}

// Update replaces the mutable columns of an existing webinar.
func (r *WebinarRepository) Update(ctx context.Context, webinar *models.Webinar) error {
	sql, args, err := r.sb.Update("webinars").
		SetMap(map[string]interface{}{
			"title":       webinar.Title,
			"slug":        webinar.Slug,
			"description": webinar.Description,
			"speaker":     webinar.Speaker,
			"image_url":   webinar.ImageURL,
			"starts_at":   webinar.StartsAt,
			"updated_at":  squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"id": webinar.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update webinar query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("webinar slug already in use")
		}
		logger.Error().Err(err).Int64("webinarID", webinar.ID).Msg("Error executing update webinar query")
		return fmt.Errorf("error updating webinar: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrWebinarNotFound
	}

	return nil
}

// Delete removes a webinar; attendee rows cascade with it.
func (r *WebinarRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, "DELETE FROM webinars WHERE id = $1", id)
	if err != nil {
		logger.Error().Err(err).Int64("webinarID", id).Msg("Error executing delete webinar query")
		return fmt.Errorf("error deleting webinar: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrWebinarNotFound
	}
	return nil
}

// Join registers the user as an attendee. Joining twice is a no-op.
func (r *WebinarRepository) Join(ctx context.Context, webinarID, userID int64) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO webinar_attendees (webinar_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		webinarID, userID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrWebinarNotFound
		}
		logger.Error().Err(err).Int64("webinarID", webinarID).Int64("userID", userID).Msg("Error joining webinar")
		return fmt.Errorf("error joining webinar: %w", err)
	}
	return nil
}

// Attendees returns the attendee list with the users' current name and
// email, in join order.
func (r *WebinarRepository) Attendees(ctx context.Context, webinarID int64) ([]*models.WebinarAttendee, error) {
	sqlStr := `
		SELECT a.webinar_id, a.user_id, u.name, u.email, a.joined_at
		FROM webinar_attendees a
		JOIN users u ON a.user_id = u.id
		WHERE a.webinar_id = $1
		ORDER BY a.joined_at ASC`

	rows, err := r.db.Query(ctx, sqlStr, webinarID)
	if err != nil {
		return nil, fmt.Errorf("error querying webinar attendees: %w", err)
	}
	defer rows.Close()

	attendees := []*models.WebinarAttendee{}
	for rows.Next() {
		var a models.WebinarAttendee
		if err := rows.Scan(&a.WebinarID, &a.UserID, &a.Name, &a.Email, &a.JoinedAt); err != nil {
			return nil, fmt.Errorf("error scanning attendee row: %w", err)
		}
		attendees = append(attendees, &a)
	}

	return attendees, rows.Err()
}
