package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karthikv/parentportal/internal/app/models"
)

// NotificationRepository handles database operations for global notifications
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
	}
}

// List retrieves notifications, newest first. A target filter also matches
// rows targeted at 'all'.
func (r *NotificationRepository) List(ctx context.Context, category, target string) ([]*models.Notification, error) {
	query := `SELECT id, message, date, category, target FROM notifications`
	var args []interface{}
	var conditions []string

	if category != "" {
		args = append(args, category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	if target != "" {
		args = append(args, target)
		conditions = append(conditions, fmt.Sprintf("(target = $%d OR target = 'all')", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += ` ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Message, &n.Date, &n.Category, &n.Target); err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

// Create inserts a notification, returning the new id.
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) (int64, error) {
	query := `
		INSERT INTO notifications (message, date, category, target)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		notification.Message, notification.Date, notification.Category, notification.Target,
	).Scan(&notification.ID)
	if err != nil {
		return 0, fmt.Errorf("error creating notification: %w", err)
	}

	return notification.ID, nil
}
