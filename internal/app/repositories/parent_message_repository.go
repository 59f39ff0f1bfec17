package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karthikv/parentportal/internal/app/models"
	"github.com/karthikv/parentportal/internal/pkg/helpers"
)

// ParentMessageRepository handles database operations for parent messages
type ParentMessageRepository struct {
	db *pgxpool.Pool
}

// NewParentMessageRepository creates a new parent message repository
func NewParentMessageRepository(db *pgxpool.Pool) *ParentMessageRepository {
	return &ParentMessageRepository{
		db: db,
	}
}

// ListByParent retrieves a parent's messages, newest first, replies included.
func (r *ParentMessageRepository) ListByParent(ctx context.Context, parentID int64) ([]*models.ParentMessage, error) {
	query := `
		SELECT id, parent_id, teacher_id, message, timestamp, is_read, reply, reply_timestamp
		FROM parent_messages
		WHERE parent_id = $1
		ORDER BY timestamp DESC
	`

	rows, err := r.db.Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving parent messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.ParentMessage
	for rows.Next() {
		var m models.ParentMessage
		var teacherID sql.NullInt64
		var reply, replyTimestamp sql.NullString
		if err := rows.Scan(&m.ID, &m.ParentID, &teacherID, &m.Message, &m.Timestamp, &m.IsRead, &reply, &replyTimestamp); err != nil {
			return nil, err
		}
		m.TeacherID = helpers.Int64OrNil(teacherID)
		m.Reply = helpers.StringOrNil(reply)
		m.ReplyTimestamp = helpers.StringOrNil(replyTimestamp)
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

// Create inserts a new unread message.
func (r *ParentMessageRepository) Create(ctx context.Context, message *models.ParentMessage) (int64, error) {
	query := `
		INSERT INTO parent_messages (parent_id, teacher_id, message, timestamp, is_read)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		message.ParentID, helpers.NullInt64(message.TeacherID), message.Message, message.Timestamp,
	).Scan(&message.ID)
	if err != nil {
		return 0, fmt.Errorf("error creating parent message: %w", err)
	}

	return message.ID, nil
}
