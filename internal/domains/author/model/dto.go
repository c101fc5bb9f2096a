package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const maxNameLength = 100

type CreateAuthorRequest struct {
	Name string `json:"name"`
}

func (r *CreateAuthorRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, maxNameLength).Error("name must be at most 100 characters"),
		),
	)
}

// UpdateAuthorRequest - PUT and PATCH, nil fields are left untouched
type UpdateAuthorRequest struct {
	Name *string `json:"name"`
}

func (r *UpdateAuthorRequest) Normalize() {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		r.Name = &name
	}
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name cannot be blank"),
			validation.RuneLength(1, maxNameLength).Error("name must be at most 100 characters"),
		),
	)
}

type AuthorResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	BooksCount int    `json:"books_count"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func (a *Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:         a.ID.String(),
		Name:       a.Name,
		BooksCount: a.BooksCount,
		CreatedAt:  a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  a.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type AuthorDetailResponse struct {
	AuthorResponse
	Books []BookSummary `json:"books"`
}

func (d *AuthorDetail) ToResponse() AuthorDetailResponse {
	books := d.Books
	if books == nil {
		books = []BookSummary{}
	}
	return AuthorDetailResponse{
		AuthorResponse: d.Author.ToResponse(),
		Books:          books,
	}
}
