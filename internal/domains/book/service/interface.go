package service

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/book/model"
)

// ServiceInterface - book business logic
type ServiceInterface interface {
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.BookResponse, error)
	GetBook(ctx context.Context, id uuid.UUID) (*model.BookResponse, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.BookResponse, error)
	UpdateBook(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) (*model.BookResponse, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
}
