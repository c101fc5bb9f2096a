package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/user/model"
	"bookclub-backend/internal/shared"
)

// Follow adds actor → username. Following twice keeps a single edge.
func (s *userService) Follow(ctx context.Context, actorID uuid.UUID, username string) (*model.MessageResponse, error) {
	target, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if target.ID == actorID {
		return nil, model.ErrCannotFollowSelf
	}

	targetID := actorID
	ev := shared.NewNotificationEvent(target.ID, actorID, shared.VerbFollowed, shared.TargetUser, &targetID)

	if _, err := s.repo.Follow(ctx, actorID, target.ID, ev); err != nil {
		return nil, err
	}

	return &model.MessageResponse{Detail: fmt.Sprintf("You are now following %s", target.Username)}, nil
}

// Unfollow removes the edge; absent edges are not an error
func (s *userService) Unfollow(ctx context.Context, actorID uuid.UUID, username string) (*model.MessageResponse, error) {
	target, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if target.ID == actorID {
		return nil, model.ErrCannotUnfollowSelf
	}

	if _, err := s.repo.Unfollow(ctx, actorID, target.ID); err != nil {
		return nil, err
	}

	return &model.MessageResponse{Detail: fmt.Sprintf("You have unfollowed %s", target.Username)}, nil
}

func (s *userService) ListFollowers(ctx context.Context, username string) ([]shared.UserBasicInfo, error) {
	target, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.repo.ListFollowers(ctx, target.ID)
}

func (s *userService) ListFollowing(ctx context.Context, username string) ([]shared.UserBasicInfo, error) {
	target, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.repo.ListFollowing(ctx, target.ID)
}
