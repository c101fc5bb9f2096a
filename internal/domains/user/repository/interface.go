package repository

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/user/model"
	"bookclub-backend/internal/shared"
)

// Repository - data access for users, profiles and the follow graph
type Repository interface {
	// CreateWithProfile inserts the user and its profile in one transaction
	CreateWithProfile(ctx context.Context, u *model.User, p *model.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error

	GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	// UpdateProfile saves the profile and, when email is non-nil, the user's email in one transaction
	UpdateProfile(ctx context.Context, p *model.Profile, email *string) error
	UpdateRole(ctx context.Context, userID uuid.UUID, role model.Role) error

	// Follow inserts the edge if absent; ev is written only when the edge is new
	Follow(ctx context.Context, followerID, followeeID uuid.UUID, ev *shared.NotificationEvent) (bool, error)
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	CountFollows(ctx context.Context, userID uuid.UUID) (model.FollowCounts, error)
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]shared.UserBasicInfo, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]shared.UserBasicInfo, error)
}
