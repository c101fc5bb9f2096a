package service

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/notification/model"
)

type NotificationService interface {
	List(ctx context.Context, recipientID uuid.UUID, unreadOnly bool) (*model.ListResponse, error)
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (*model.MarkAllReadResponse, error)
}
