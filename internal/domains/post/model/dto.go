package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const maxTitleLength = 200

// ========================================
// POSTS
// ========================================

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r *CreatePostRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, maxTitleLength).Error("title must be at most 200 characters"),
		),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
	)
}

func (r CreatePostRequest) ToPost(authorID uuid.UUID) *Post {
	now := time.Now()
	return &Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdatePostRequest - PUT and PATCH, nil fields are left untouched
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (r *UpdatePostRequest) Normalize() {
	r.Title = trimPtr(r.Title)
	r.Content = trimPtr(r.Content)
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be blank"),
			validation.RuneLength(1, maxTitleLength).Error("title must be at most 200 characters"),
		),
		validation.Field(&r.Content, validation.NilOrNotEmpty.Error("content cannot be blank")),
	)
}

func (r UpdatePostRequest) Apply(p *Post) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Content != nil {
		p.Content = *r.Content
	}
	p.UpdatedAt = time.Now()
}

// ========================================
// COMMENTS
// ========================================

// CreateCommentRequest - post comes from the body on /comments and from the path on /posts/:id/comments
type CreateCommentRequest struct {
	PostID  string `json:"post"`
	Content string `json:"content"`
}

func (r *CreateCommentRequest) Normalize() {
	r.PostID = strings.TrimSpace(r.PostID)
	r.Content = strings.TrimSpace(r.Content)
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PostID,
			validation.Required.Error("post is required"),
			is.UUID.Error("post must be a valid id"),
		),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
	)
}

func (r CreateCommentRequest) ToComment(authorID uuid.UUID) *Comment {
	now := time.Now()
	return &Comment{
		ID:        uuid.New(),
		PostID:    uuid.MustParse(r.PostID),
		AuthorID:  authorID,
		Content:   r.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type UpdateCommentRequest struct {
	Content *string `json:"content"`
}

func (r *UpdateCommentRequest) Normalize() {
	r.Content = trimPtr(r.Content)
}

func (r UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.NilOrNotEmpty.Error("content cannot be blank")),
	)
}

func (r UpdateCommentRequest) Apply(c *Comment) {
	if r.Content != nil {
		c.Content = *r.Content
	}
	c.UpdatedAt = time.Now()
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// ========================================
// RESPONSES
// ========================================

type PostResponse struct {
	ID            uuid.UUID `json:"id"`
	Author        string    `json:"author"`
	AuthorID      uuid.UUID `json:"author_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (p *Post) ToResponse() PostResponse {
	return PostResponse{
		ID:            p.ID,
		Author:        p.AuthorUsername,
		AuthorID:      p.AuthorID,
		Title:         p.Title,
		Content:       p.Content,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	AuthorID  uuid.UUID `json:"author_id"`
	Post      uuid.UUID `json:"post"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Comment) ToResponse() CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Author:    c.AuthorUsername,
		AuthorID:  c.AuthorID,
		Post:      c.PostID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// DetailResponse - like/unlike outcome
type DetailResponse struct {
	Detail string `json:"detail"`
}

func ToPostResponses(posts []Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, posts[i].ToResponse())
	}
	return out
}

func ToCommentResponses(comments []Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, comments[i].ToResponse())
	}
	return out
}
