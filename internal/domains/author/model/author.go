package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Author struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	BooksCount int       `json:"books_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BookSummary is the nested, read-only book view in an author detail
type BookSummary struct {
	ID              uuid.UUID        `json:"id"`
	Title           string           `json:"title"`
	PublicationYear int              `json:"publication_year"`
	ISBN            *string          `json:"isbn"`
	Price           *decimal.Decimal `json:"price"`
}

// AuthorDetail is what the detail cache stores
type AuthorDetail struct {
	Author
	Books []BookSummary `json:"books"`
}

type AuthorFilter struct {
	Search   string
	Ordering string
}
