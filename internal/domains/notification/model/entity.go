package model

import (
	"time"

	"github.com/google/uuid"

	"bookclub-backend/internal/shared"
)

// Notification - one row per event addressed to a recipient
type Notification struct {
	ID          uuid.UUID
	RecipientID uuid.UUID
	Actor       shared.UserBasicInfo
	Verb        string
	TargetType  string
	TargetID    *uuid.UUID
	IsRead      bool
	CreatedAt   time.Time
}

type ListFilter struct {
	RecipientID uuid.UUID
	UnreadOnly  bool
}
