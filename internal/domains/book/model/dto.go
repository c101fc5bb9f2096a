package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxTitleLength = 255

// now is evaluated on every validation so the year bound follows the calendar
var now = time.Now

// ========================================
// REQUEST DTOs
// ========================================

type CreateBookRequest struct {
	Title           string           `json:"title"`
	PublicationYear int              `json:"publication_year"`
	ISBN            *string          `json:"isbn"`
	Price           *decimal.Decimal `json:"price"`
	AuthorID        string           `json:"author"`
}

func (r *CreateBookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.ISBN = normalizeISBN(r.ISBN)
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, maxTitleLength).Error("title must be at most 255 characters"),
		),
		validation.Field(&r.PublicationYear,
			validation.Required.Error("publication_year is required"),
			validation.By(notInFuture),
		),
		validation.Field(&r.ISBN, is.ISBN.Error("isbn must be a valid ISBN-10 or ISBN-13")),
		validation.Field(&r.Price, validation.By(nonNegativePrice)),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author is required"),
			is.UUID.Error("author must be a valid id"),
		),
	)
}

func (r CreateBookRequest) ToBook() *Book {
	ts := now()
	return &Book{
		ID:              uuid.New(),
		Title:           r.Title,
		PublicationYear: r.PublicationYear,
		ISBN:            r.ISBN,
		Price:           r.Price,
		AuthorID:        uuid.MustParse(r.AuthorID),
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
}

// UpdateBookRequest - PUT and PATCH, nil fields are left untouched.
// An empty isbn clears it.
type UpdateBookRequest struct {
	Title           *string          `json:"title"`
	PublicationYear *int             `json:"publication_year"`
	ISBN            *string          `json:"isbn"`
	Price           *decimal.Decimal `json:"price"`
	AuthorID        *string          `json:"author"`
}

func (r *UpdateBookRequest) Normalize() {
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		r.Title = &title
	}
	if r.ISBN != nil {
		isbn := strings.TrimSpace(*r.ISBN)
		r.ISBN = &isbn
	}
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be blank"),
			validation.RuneLength(1, maxTitleLength).Error("title must be at most 255 characters"),
		),
		validation.Field(&r.PublicationYear,
			validation.NilOrNotEmpty.Error("publication_year cannot be blank"),
			validation.By(notInFuture),
		),
		validation.Field(&r.ISBN, is.ISBN.Error("isbn must be a valid ISBN-10 or ISBN-13")),
		validation.Field(&r.Price, validation.By(nonNegativePrice)),
		validation.Field(&r.AuthorID,
			validation.NilOrNotEmpty.Error("author cannot be blank"),
			is.UUID.Error("author must be a valid id"),
		),
	)
}

// Apply copies the supplied fields onto b. Validate must have passed.
func (r UpdateBookRequest) Apply(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.PublicationYear != nil {
		b.PublicationYear = *r.PublicationYear
	}
	if r.ISBN != nil {
		b.ISBN = normalizeISBN(r.ISBN)
	}
	if r.Price != nil {
		price := *r.Price
		b.Price = &price
	}
	if r.AuthorID != nil {
		b.AuthorID = uuid.MustParse(*r.AuthorID)
	}
}

// ========================================
// VALIDATION RULES
// ========================================

func notInFuture(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	year, ok := v.(int)
	if !ok {
		return nil
	}
	current := now().Year()
	if year > current {
		return fmt.Errorf("Publication year cannot be in the future. Current year is %d.", current)
	}
	return nil
}

func nonNegativePrice(value interface{}) error {
	switch v := value.(type) {
	case *decimal.Decimal:
		if v != nil && v.IsNegative() {
			return errors.New("price must be greater than or equal to 0")
		}
	case decimal.Decimal:
		if v.IsNegative() {
			return errors.New("price must be greater than or equal to 0")
		}
	}
	return nil
}

func normalizeISBN(isbn *string) *string {
	if isbn == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*isbn)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ========================================
// RESPONSE DTOs
// ========================================

type BookResponse struct {
	ID              uuid.UUID        `json:"id"`
	Title           string           `json:"title"`
	PublicationYear int              `json:"publication_year"`
	ISBN            *string          `json:"isbn"`
	Price           *decimal.Decimal `json:"price"`
	Author          uuid.UUID        `json:"author"`
	AuthorName      string           `json:"author_name"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func (b *Book) ToResponse() BookResponse {
	return BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		PublicationYear: b.PublicationYear,
		ISBN:            b.ISBN,
		Price:           b.Price,
		Author:          b.AuthorID,
		AuthorName:      b.AuthorName,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
