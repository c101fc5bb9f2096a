package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookclub-backend/internal/domains/notification/model"
	"bookclub-backend/internal/shared"
)

type notificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{db: db}
}

const insertNotificationSQL = `
	INSERT INTO notifications (id, recipient_id, actor_id, verb, target_type, target_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// InsertEvent writes a notification inside the caller's transaction.
// Used by the follow, like and comment writes so the notification commits with the action.
func InsertEvent(ctx context.Context, tx pgx.Tx, ev *shared.NotificationEvent) error {
	if ev == nil {
		return nil
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}

	_, err := tx.Exec(ctx, insertNotificationSQL,
		uuid.New(), ev.RecipientID, ev.ActorID, ev.Verb, ev.TargetType, ev.TargetID, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("create notification with tx: %w", err)
	}
	return nil
}

func (r *notificationRepository) Create(ctx context.Context, ev *shared.NotificationEvent) (uuid.UUID, error) {
	id := uuid.New()
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(ctx, insertNotificationSQL,
		id, ev.RecipientID, ev.ActorID, ev.Verb, ev.TargetType, ev.TargetID, ev.CreatedAt)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create notification: %w", err)
	}
	return id, nil
}

// List returns unread first, then newest first
func (r *notificationRepository) List(ctx context.Context, filter model.ListFilter) ([]model.Notification, error) {
	query := `
		SELECT n.id, n.recipient_id, n.actor_id, u.username, n.verb,
		       n.target_type, n.target_id, n.is_read, n.created_at
		FROM notifications n
		JOIN users u ON u.id = n.actor_id
		WHERE n.recipient_id = $1
	`
	if filter.UnreadOnly {
		query += " AND n.is_read = FALSE"
	}
	query += " ORDER BY n.is_read ASC, n.created_at DESC, n.id DESC"

	rows, err := r.db.Query(ctx, query, filter.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]model.Notification, 0)
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(
			&n.ID, &n.RecipientID, &n.Actor.ID, &n.Actor.Username, &n.Verb,
			&n.TargetType, &n.TargetID, &n.IsRead, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return notifications, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE`,
		recipientID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_id = $2`,
		id, recipientID,
	)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE recipient_id = $1 AND is_read = FALSE`,
		recipientID,
	)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return tag.RowsAffected(), nil
}
