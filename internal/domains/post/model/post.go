package model

import (
	"time"

	"github.com/google/uuid"
)

// Post - Entity, AuthorUsername is joined on read
type Post struct {
	ID             uuid.UUID `json:"id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	LikesCount     int       `json:"likes_count"`
	CommentsCount  int       `json:"comments_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsOwnedBy reports whether userID authored the post
func (p *Post) IsOwnedBy(userID uuid.UUID) bool {
	return p.AuthorID == userID
}

type Comment struct {
	ID             uuid.UUID `json:"id"`
	PostID         uuid.UUID `json:"post"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (c *Comment) IsOwnedBy(userID uuid.UUID) bool {
	return c.AuthorID == userID
}

type Like struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	PostID    uuid.UUID `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PostFilter - list query parameters
type PostFilter struct {
	Search string // title or content, case-insensitive
	Author string // author username, exact
}

// CommentFilter - list query parameters
type CommentFilter struct {
	PostID *uuid.UUID
	Search string // content, case-insensitive
}
