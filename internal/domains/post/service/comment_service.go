package service

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/shared"
)

func (s *postService) ListComments(ctx context.Context, filter model.CommentFilter) ([]model.CommentResponse, error) {
	comments, err := s.repo.ListComments(ctx, filter)
	if err != nil {
		return nil, err
	}
	return model.ToCommentResponses(comments), nil
}

func (s *postService) GetComment(ctx context.Context, id uuid.UUID) (*model.CommentResponse, error) {
	c, err := s.repo.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := c.ToResponse()
	return &resp, nil
}

// CreateComment notifies the post author unless they commented on their own post
func (s *postService) CreateComment(ctx context.Context, authorID uuid.UUID, req model.CreateCommentRequest) (*model.CommentResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := req.ToComment(authorID)
	p, err := s.repo.GetPost(ctx, c.PostID)
	if err != nil {
		return nil, err
	}

	ev := shared.NewNotificationEvent(p.AuthorID, authorID, shared.VerbCommented, shared.TargetPost, &p.ID)
	if err := s.repo.CreateComment(ctx, c, ev); err != nil {
		return nil, err
	}

	resp := c.ToResponse()
	return &resp, nil
}

func (s *postService) UpdateComment(ctx context.Context, userID, commentID uuid.UUID, req model.UpdateCommentRequest) (*model.CommentResponse, error) {
	c, err := s.repo.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if !c.IsOwnedBy(userID) {
		return nil, model.ErrForbidden
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	req.Apply(c)
	if err := s.repo.UpdateComment(ctx, c); err != nil {
		return nil, err
	}

	resp := c.ToResponse()
	return &resp, nil
}

func (s *postService) DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error {
	c, err := s.repo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if !c.IsOwnedBy(userID) {
		return model.ErrForbidden
	}
	return s.repo.DeleteComment(ctx, commentID)
}
