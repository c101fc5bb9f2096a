package repository

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/notification/model"
	"bookclub-backend/internal/shared"
)

type NotificationRepository interface {
	Create(ctx context.Context, ev *shared.NotificationEvent) (uuid.UUID, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Notification, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error)
	// MarkRead only touches rows owned by recipientID
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
}
