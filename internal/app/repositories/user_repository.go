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
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/logger"
)

const userColumns = "id, email, name, picture_url, role, bio, socials, created_at, updated_at, last_login_at"

// UserRepository handles database operations for users and their
// download history.
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.PictureURL, &user.Role,
		&user.Bio, &user.Socials, &user.CreatedAt, &user.UpdatedAt, &user.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sqlStr := "SELECT " + userColumns + " FROM users WHERE id = $1"
	user, err := scanUser(r.db.QueryRow(ctx, sqlStr, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sqlStr := "SELECT " + userColumns + " FROM users WHERE email = $1"
	user, err := scanUser(r.db.QueryRow(ctx, sqlStr, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}
	return user, nil
}

// UpsertByEmail inserts the user on first login or refreshes the Google
// profile fields on a returning one. last_login_at is stamped either way.
// The role column is deliberately left out of the update clause: a
// sign-in must never demote a promoted account.
func (r *UserRepository) UpsertByEmail(ctx context.Context, email, name string, pictureURL *string, role models.Role) (*models.User, error) {
	sqlStr := `
		INSERT INTO users (email, name, picture_url, role, last_login_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name,
			picture_url = COALESCE(EXCLUDED.picture_url, users.picture_url),
			last_login_at = now(),
			updated_at = now()
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, sqlStr, email, name, pictureURL, role))
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error upserting user")
		return nil, fmt.Errorf("error upserting user: %w", err)
	}

	return user, nil
}

// UpdateProfile updates the caller-editable profile fields.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, name *string, bio *string, socials map[string]string) error {
	setMap := map[string]interface{}{
		"updated_at": squirrel.Expr("now()"),
	}
	if name != nil {
		setMap["name"] = *name
	}
	if bio != nil {
		setMap["bio"] = *bio
	}
	if socials != nil {
		setMap["socials"] = socials
	}

	sql, args, err := r.sb.Update("users").
		SetMap(setMap).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error updating user profile")
		return fmt.Errorf("error updating user profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateRole sets a user's role.
func (r *UserRepository) UpdateRole(ctx context.Context, id int64, role models.Role) error {
	cmdTag, err := r.db.Exec(ctx, "UPDATE users SET role = $1, updated_at = now() WHERE id = $2", role, id)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error updating user role")
		return fmt.Errorf("error updating user role: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// PromoteByEmail raises an existing account to the given role without
// touching anything else. Missing accounts are not an error; the
// promotion applies on their first sign-in instead.
func (r *UserRepository) PromoteByEmail(ctx context.Context, email string, role models.Role) error {
	_, err := r.db.Exec(ctx, "UPDATE users SET role = $1, updated_at = now() WHERE email = $2", role, email)
	if err != nil {
		return fmt.Errorf("error promoting user: %w", err)
	}
	return nil
}

// List returns one page of users, newest first.
func (r *UserRepository) List(ctx context.Context, page, size int) ([]*models.User, error) {
	offset, limit := listOffsetLimit(page, size)

	sqlStr, args, err := r.sb.Select(userColumns).
		From("users").
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// Count returns the total number of users.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

// RecordDownload stores that the user downloaded the note. Repeated
// downloads of the same note are a no-op, so history rows stay unique.
func (r *UserRepository) RecordDownload(ctx context.Context, userID, noteID int64) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO user_downloads (user_id, note_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		userID, noteID)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Int64("noteID", noteID).Msg("Error recording download")
		return fmt.Errorf("error recording download: %w", err)
	}
	return nil
}

// Downloads returns the user's download history, newest first.
func (r *UserRepository) Downloads(ctx context.Context, userID int64) ([]*models.Download, error) {
	sqlStr := `
		SELECT d.note_id, n.slug, d.downloaded_at
		FROM user_downloads d
		JOIN notes n ON d.note_id = n.id
		WHERE d.user_id = $1
		ORDER BY d.downloaded_at DESC`

	rows, err := r.db.Query(ctx, sqlStr, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying downloads: %w", err)
	}
	defer rows.Close()

	downloads := []*models.Download{}
	for rows.Next() {
		var d models.Download
		if err := rows.Scan(&d.NoteID, &d.Slug, &d.DownloadedAt); err != nil {
			return nil, fmt.Errorf("error scanning download row: %w", err)
		}
		downloads = append(downloads, &d)
	}

	return downloads, rows.Err()
}
