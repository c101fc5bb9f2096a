package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Book - Entity, AuthorName is joined on read
type Book struct {
	ID              uuid.UUID        `json:"id"`
	Title           string           `json:"title"`
	PublicationYear int              `json:"publication_year"`
	ISBN            *string          `json:"isbn"`
	Price           *decimal.Decimal `json:"price"`
	AuthorID        uuid.UUID        `json:"author"`
	AuthorName      string           `json:"author_name"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// BookFilter - list query parameters
type BookFilter struct {
	PublicationYear *int
	AuthorID        *uuid.UUID
	Search          string // title or author name, case-insensitive
	Ordering        string // title | publication_year | price | created_at, "-" prefix for DESC
}
