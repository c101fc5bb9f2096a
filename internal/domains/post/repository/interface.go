package repository

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/shared"
)

// PostRepository - posts, comments and likes
type PostRepository interface {
	// Posts
	ListPosts(ctx context.Context, filter model.PostFilter) ([]model.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (*model.Post, error)
	CreatePost(ctx context.Context, p *model.Post) error
	UpdatePost(ctx context.Context, p *model.Post) error
	DeletePost(ctx context.Context, id uuid.UUID) error
	// Feed returns posts authored by users that userID follows, newest first
	Feed(ctx context.Context, userID uuid.UUID) ([]model.Post, error)

	// Comments
	ListComments(ctx context.Context, filter model.CommentFilter) ([]model.Comment, error)
	GetComment(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	// CreateComment stores c and ev (if any) in one transaction
	CreateComment(ctx context.Context, c *model.Comment, ev *shared.NotificationEvent) error
	UpdateComment(ctx context.Context, c *model.Comment) error
	DeleteComment(ctx context.Context, id uuid.UUID) error

	// Likes
	// Like inserts the (user, post) row if absent. created is false when it already existed,
	// ev is written in the same transaction only when the row was created.
	Like(ctx context.Context, userID, postID uuid.UUID, ev *shared.NotificationEvent) (created bool, err error)
	Unlike(ctx context.Context, userID, postID uuid.UUID) (deleted bool, err error)
}
