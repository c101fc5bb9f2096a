package service

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/user/model"
	"bookclub-backend/internal/shared"
	"bookclub-backend/pkg/jwt"
)

type Service interface {
	// Authentication
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error

	// Profile
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (*model.ProfileResponse, error)
	GetPublicProfile(ctx context.Context, username string, viewerID *uuid.UUID) (*model.PublicProfileResponse, error)

	// Follow graph
	Follow(ctx context.Context, actorID uuid.UUID, username string) (*model.MessageResponse, error)
	Unfollow(ctx context.Context, actorID uuid.UUID, username string) (*model.MessageResponse, error)
	ListFollowers(ctx context.Context, username string) ([]shared.UserBasicInfo, error)
	ListFollowing(ctx context.Context, username string) ([]shared.UserBasicInfo, error)

	// Roles
	GetRole(ctx context.Context, userID uuid.UUID) (string, error)
	IsStaff(ctx context.Context, userID uuid.UUID) (bool, error)
	Dashboard(ctx context.Context, userID uuid.UUID, area model.Role) (*model.DashboardResponse, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, req model.UpdateRoleRequest) (*model.UserResponse, error)
}

// TokenRevoker invalidates an issued token before it expires
type TokenRevoker interface {
	Revoke(ctx context.Context, claims *jwt.Claims) error
}
