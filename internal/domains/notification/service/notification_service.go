package service

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/notification/model"
	"bookclub-backend/internal/domains/notification/repository"
)

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(ctx context.Context, recipientID uuid.UUID, unreadOnly bool) (*model.ListResponse, error) {
	notifications, err := s.repo.List(ctx, model.ListFilter{RecipientID: recipientID, UnreadOnly: unreadOnly})
	if err != nil {
		return nil, err
	}

	unread, err := s.repo.CountUnread(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	resp := &model.ListResponse{
		Notifications: make([]model.NotificationResponse, 0, len(notifications)),
		UnreadCount:   unread,
	}
	for i := range notifications {
		resp.Notifications = append(resp.Notifications, notifications[i].ToResponse())
	}
	return resp, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	return s.repo.MarkRead(ctx, id, recipientID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (*model.MarkAllReadResponse, error) {
	n, err := s.repo.MarkAllRead(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	return &model.MarkAllReadResponse{Updated: n}, nil
}
