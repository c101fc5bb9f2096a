package model

import (
	"time"

	"github.com/google/uuid"

	"bookclub-backend/internal/shared"
)

type NotificationResponse struct {
	ID         uuid.UUID            `json:"id"`
	Actor      shared.UserBasicInfo `json:"actor"`
	Verb       string               `json:"verb"`
	TargetType string               `json:"target_type,omitempty"`
	TargetID   *uuid.UUID           `json:"target_id,omitempty"`
	IsRead     bool                 `json:"is_read"`
	CreatedAt  time.Time            `json:"created_at"`
}

func (n *Notification) ToResponse() NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		Actor:      n.Actor,
		Verb:       n.Verb,
		TargetType: n.TargetType,
		TargetID:   n.TargetID,
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt,
	}
}

type ListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
