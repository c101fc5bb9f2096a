package repository

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/book/model"
)

// RepositoryInterface - data access for books
type RepositoryInterface interface {
	List(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	// GetDetail reads through the detail cache
	GetDetail(ctx context.Context, id uuid.UUID) (*model.Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	Create(ctx context.Context, b *model.Book) error
	// Update saves b; previousAuthorID is the author before the change, for cache invalidation
	Update(ctx context.Context, b *model.Book, previousAuthorID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
