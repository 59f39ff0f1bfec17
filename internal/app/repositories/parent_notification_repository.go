package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karthikv/parentportal/internal/app/models"
)

// ParentNotificationRepository handles database operations for per-parent notices
type ParentNotificationRepository struct {
	db *pgxpool.Pool
}

// NewParentNotificationRepository creates a new parent notification repository
func NewParentNotificationRepository(db *pgxpool.Pool) *ParentNotificationRepository {
	return &ParentNotificationRepository{
		db: db,
	}
}

// ListByParent retrieves a parent's notices, newest first, optionally
// restricted by read state.
func (r *ParentNotificationRepository) ListByParent(ctx context.Context, parentID int64, isRead *bool) ([]*models.ParentNotification, error) {
	query := `
		SELECT id, parent_id, message, date, is_read
		FROM parent_notifications
		WHERE parent_id = $1
	`
	args := []interface{}{parentID}

	if isRead != nil {
		args = append(args, *isRead)
		query += fmt.Sprintf(" AND is_read = $%d", len(args))
	}

	query += ` ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving parent notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.ParentNotification
	for rows.Next() {
		var n models.ParentNotification
		if err := rows.Scan(&n.ID, &n.ParentID, &n.Message, &n.Date, &n.IsRead); err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

// CountUnread counts a parent's unread notices.
func (r *ParentNotificationRepository) CountUnread(ctx context.Context, parentID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM parent_notifications WHERE parent_id = $1 AND is_read = false`, parentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting unread notifications: %w", err)
	}

	return count, nil
}

// MarkRead sets the read flag. Unknown ids are accepted silently; the
// update is a no-op then, matching the portal's historical behavior.
func (r *ParentNotificationRepository) MarkRead(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE parent_notifications SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error updating notification: %w", err)
	}

	return nil
}
