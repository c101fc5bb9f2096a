package service

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/post/model"
)

// ServiceInterface - posts, comments, likes and feed
type ServiceInterface interface {
	ListPosts(ctx context.Context, filter model.PostFilter) ([]model.PostResponse, error)
	GetPost(ctx context.Context, id uuid.UUID) (*model.PostResponse, error)
	CreatePost(ctx context.Context, authorID uuid.UUID, req model.CreatePostRequest) (*model.PostResponse, error)
	UpdatePost(ctx context.Context, userID, postID uuid.UUID, req model.UpdatePostRequest) (*model.PostResponse, error)
	DeletePost(ctx context.Context, userID, postID uuid.UUID) error
	Feed(ctx context.Context, userID uuid.UUID) ([]model.PostResponse, error)

	ListComments(ctx context.Context, filter model.CommentFilter) ([]model.CommentResponse, error)
	GetComment(ctx context.Context, id uuid.UUID) (*model.CommentResponse, error)
	CreateComment(ctx context.Context, authorID uuid.UUID, req model.CreateCommentRequest) (*model.CommentResponse, error)
	UpdateComment(ctx context.Context, userID, commentID uuid.UUID, req model.UpdateCommentRequest) (*model.CommentResponse, error)
	DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error

	LikePost(ctx context.Context, userID, postID uuid.UUID) (*model.DetailResponse, error)
	UnlikePost(ctx context.Context, userID, postID uuid.UUID) (*model.DetailResponse, error)
}
