package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/logger"
)

// ContactRepository handles database operations for the contact inbox.
type ContactRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create stores a new inbox message.
func (r *ContactRepository) Create(ctx context.Context, msg *models.ContactMessage) (int64, error) {
	sql, args, err := r.sb.Insert("contact_messages").
		Columns("name", "email", "subject", "message", "kind").
		Values(msg.Name, msg.Email, msg.Subject, msg.Message, msg.Kind).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create message query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&msg.ID, &msg.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create message query")
		return 0, fmt.Errorf("error creating contact message: %w", err)
	}

	return msg.ID, nil
}

// List returns one page of messages, optionally filtered by kind and
// resolution state, newest first.
func (r *ContactRepository) List(ctx context.Context, kind *models.MessageKind, resolved *bool, page, size int) ([]*models.ContactMessage, error) {
	offset, limit := listOffsetLimit(page, size)

	builder := r.sb.Select("id", "name", "email", "subject", "message", "kind", "resolved", "created_at").
		From("contact_messages").
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit))
	if kind != nil {
		builder = builder.Where(squirrel.Eq{"kind": *kind})
	}
	if resolved != nil {
		builder = builder.Where(squirrel.Eq{"resolved": *resolved})
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list messages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list messages query")
		return nil, fmt.Errorf("error querying contact messages: %w", err)
	}
	defer rows.Close()

	messages := []*models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Kind, &m.Resolved, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, &m)
	}

	return messages, rows.Err()
}

// Count returns the number of messages matching the same filters as List.
func (r *ContactRepository) Count(ctx context.Context, kind *models.MessageKind, resolved *bool) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From("contact_messages")
	if kind != nil {
		builder = builder.Where(squirrel.Eq{"kind": *kind})
	}
	if resolved != nil {
		builder = builder.Where(squirrel.Eq{"resolved": *resolved})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count messages query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting contact messages: %w", err)
	}

	return count, nil
}

// MarkResolved flips a message's resolved flag.
func (r *ContactRepository) MarkResolved(ctx context.Context, id int64, resolved bool) error {
	cmdTag, err := r.db.Exec(ctx, "UPDATE contact_messages SET resolved = $1 WHERE id = $2", resolved, id)
	if err != nil {
		logger.Error().Err(err).Int64("messageID", id).Msg("Error updating message resolution")
		return fmt.Errorf("error updating contact message: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}

// Delete removes a message from the inbox.
func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, "DELETE FROM contact_messages WHERE id = $1", id)
	if err != nil {
		logger.Error().Err(err).Int64("messageID", id).Msg("Error deleting contact message")
		return fmt.Errorf("error deleting contact message: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}
