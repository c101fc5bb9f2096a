package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"bookclub-backend/internal/domains/user/model"
	"bookclub-backend/internal/domains/user/repository"
	"bookclub-backend/pkg/jwt"
)

// bcrypt cost
const defaultHashCost = 12

type userService struct {
	repo       repository.Repository
	jwtManager *jwt.Manager
	revoker    TokenRevoker
	hashCost   int
}

func NewUserService(repo repository.Repository, jwtManager *jwt.Manager, revoker TokenRevoker) Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
		revoker:    revoker,
		hashCost:   defaultHashCost,
	}
}

// ========================================
// AUTHENTICATION
// ========================================

// Register creates the user and its member profile, then issues a token
func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	// 1. VALIDATE INPUT
	req.Username = strings.TrimSpace(req.Username)
	req.Email = normalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. HASH PASSWORD
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 3. CREATE USER + PROFILE (both or neither)
	now := time.Now()
	u := &model.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := model.NewProfile(u.ID, now)

	// Uniqueness is decided by the users_username_key / users_email_key constraints
	if err := s.repo.CreateWithProfile(ctx, u, profile); err != nil {
		return nil, err
	}

	log.Info().Str("user_id", u.ID.String()).Str("username", u.Username).Msg("user registered")

	// 4. ISSUE TOKEN
	return s.authResponse(u, profile.Role)
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByUsername(ctx, req.Username)
	if errors.Is(err, model.ErrUserNotFound) {
		return nil, model.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !u.IsActive {
		return nil, model.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	profile, err := s.repo.GetProfile(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateLastLogin(ctx, u.ID); err != nil {
		log.Warn().Err(err).Str("user_id", u.ID.String()).Msg("failed to update last login")
	}

	return s.authResponse(u, profile.Role)
}

func (s *userService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil {
		return model.ErrNotAuthenticated
	}
	if err := s.revoker.Revoke(ctx, claims); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *userService) authResponse(u *model.User, role model.Role) (*model.AuthResponse, error) {
	token, err := s.jwtManager.GenerateAccessToken(u.ID, u.Username, u.IsStaff, string(role))
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &model.AuthResponse{
		Token:     token,
		ExpiresIn: int64(s.jwtManager.AccessTTL().Seconds()),
		User:      u.ToResponse(role),
	}, nil
}

// ========================================
// PROFILE
// ========================================

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.ProfileResponse, error) {
	u, profile, err := s.loadUserWithProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountFollows(ctx, userID)
	if err != nil {
		return nil, err
	}

	return model.NewProfileResponse(u, profile, counts), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (*model.ProfileResponse, error) {
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		req.Email = &email
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, profile, err := s.loadUserWithProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	req.Apply(profile)
	if err := s.repo.UpdateProfile(ctx, profile, req.Email); err != nil {
		return nil, err
	}
	if req.Email != nil {
		u.Email = *req.Email
	}

	counts, err := s.repo.CountFollows(ctx, userID)
	if err != nil {
		return nil, err
	}

	return model.NewProfileResponse(u, profile, counts), nil
}

func (s *userService) GetPublicProfile(ctx context.Context, username string, viewerID *uuid.UUID) (*model.PublicProfileResponse, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	profile, err := s.repo.GetProfile(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountFollows(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	resp := model.NewPublicProfileResponse(u, profile, counts)
	if viewerID != nil && *viewerID != u.ID {
		following, err := s.repo.IsFollowing(ctx, *viewerID, u.ID)
		if err != nil {
			return nil, err
		}
		resp.IsFollowing = &following
	}
	return resp, nil
}

func (s *userService) loadUserWithProfile(ctx context.Context, userID uuid.UUID) (*model.User, *model.Profile, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return u, profile, nil
}

// ========================================
// ROLES
// ========================================

func (s *userService) GetRole(ctx context.Context, userID uuid.UUID) (string, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	return string(profile.Role), nil
}

// IsStaff is false for deactivated accounts
func (s *userService) IsStaff(ctx context.Context, userID uuid.UUID) (bool, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return u.IsStaff && u.IsActive, nil
}

func (s *userService) Dashboard(ctx context.Context, userID uuid.UUID, area model.Role) (*model.DashboardResponse, error) {
	u, profile, err := s.loadUserWithProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.DashboardResponse{
		Dashboard: string(area),
		Message:   fmt.Sprintf("Welcome to the %s dashboard, %s.", area, u.Username),
		Username:  u.Username,
		Role:      profile.Role,
	}, nil
}

func (s *userService) UpdateRole(ctx context.Context, userID uuid.UUID, req model.UpdateRoleRequest) (*model.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	role := model.Role(req.Role)
	if err := s.repo.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}

	log.Info().Str("user_id", userID.String()).Str("role", req.Role).Msg("role updated")

	resp := u.ToResponse(role)
	return &resp, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
