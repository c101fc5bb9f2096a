package shared

import (
	"time"

	"github.com/google/uuid"
)

// UserBasicInfo is the public view of a user embedded by other domains
// (post author, comment author, notification actor) without importing the user domain.
type UserBasicInfo struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// Notification verbs
const (
	VerbFollowed  = "started following you"
	VerbLiked     = "liked your post"
	VerbCommented = "commented on your post"
)

// Notification target types
const (
	TargetUser    = "user"
	TargetPost    = "post"
	TargetComment = "comment"
)

// NotificationEvent is what a domain writes when an action should notify someone.
// Persisted by the repository that performs the action, in the same transaction.
type NotificationEvent struct {
	RecipientID uuid.UUID
	ActorID     uuid.UUID
	Verb        string
	TargetType  string
	TargetID    *uuid.UUID
	CreatedAt   time.Time
}

// NewNotificationEvent returns nil when actor and recipient are the same user
func NewNotificationEvent(recipient, actor uuid.UUID, verb, targetType string, targetID *uuid.UUID) *NotificationEvent {
	if recipient == actor {
		return nil
	}
	return &NotificationEvent{
		RecipientID: recipient,
		ActorID:     actor,
		Verb:        verb,
		TargetType:  targetType,
		TargetID:    targetID,
		CreatedAt:   time.Now(),
	}
}
