package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/domains/post/repository"
	"bookclub-backend/internal/shared"
)

type postService struct {
	repo repository.PostRepository
}

func NewPostService(repo repository.PostRepository) ServiceInterface {
	return &postService{repo: repo}
}

// =====================================================
// POSTS
// =====================================================

func (s *postService) ListPosts(ctx context.Context, filter model.PostFilter) ([]model.PostResponse, error) {
	posts, err := s.repo.ListPosts(ctx, filter)
	if err != nil {
		return nil, err
	}
	return model.ToPostResponses(posts), nil
}

func (s *postService) GetPost(ctx context.Context, id uuid.UUID) (*model.PostResponse, error) {
	p, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := p.ToResponse()
	return &resp, nil
}

func (s *postService) CreatePost(ctx context.Context, authorID uuid.UUID, req model.CreatePostRequest) (*model.PostResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := req.ToPost(authorID)
	if err := s.repo.CreatePost(ctx, p); err != nil {
		return nil, err
	}

	resp := p.ToResponse()
	return &resp, nil
}

func (s *postService) UpdatePost(ctx context.Context, userID, postID uuid.UUID, req model.UpdatePostRequest) (*model.PostResponse, error) {
	// Step 1: Load and check ownership before touching anything
	p, err := s.repo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !p.IsOwnedBy(userID) {
		return nil, model.ErrForbidden
	}

	// Step 2: Validate supplied fields
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 3: Save
	req.Apply(p)
	if err := s.repo.UpdatePost(ctx, p); err != nil {
		return nil, err
	}

	resp := p.ToResponse()
	return &resp, nil
}

func (s *postService) DeletePost(ctx context.Context, userID, postID uuid.UUID) error {
	p, err := s.repo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if !p.IsOwnedBy(userID) {
		return model.ErrForbidden
	}

	return s.repo.DeletePost(ctx, postID)
}

func (s *postService) Feed(ctx context.Context, userID uuid.UUID) ([]model.PostResponse, error) {
	posts, err := s.repo.Feed(ctx, userID)
	if err != nil {
		return nil, err
	}
	return model.ToPostResponses(posts), nil
}

// =====================================================
// LIKES
// =====================================================

func (s *postService) LikePost(ctx context.Context, userID, postID uuid.UUID) (*model.DetailResponse, error) {
	p, err := s.repo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	ev := shared.NewNotificationEvent(p.AuthorID, userID, shared.VerbLiked, shared.TargetPost, &p.ID)
	created, err := s.repo.Like(ctx, userID, postID, ev)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, model.ErrAlreadyLiked
	}

	log.Debug().Str("post_id", postID.String()).Str("user_id", userID.String()).Msg("post liked")
	return &model.DetailResponse{Detail: model.MsgPostLiked}, nil
}

func (s *postService) UnlikePost(ctx context.Context, userID, postID uuid.UUID) (*model.DetailResponse, error) {
	if _, err := s.repo.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	deleted, err := s.repo.Unlike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, model.ErrNotLiked
	}
	return &model.DetailResponse{Detail: model.MsgPostUnliked}, nil
}
