package repository

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/author/model"
)

type RepositoryInterface interface {
	Create(ctx context.Context, a *model.Author) error
	// GetDetail reads through the detail cache
	GetDetail(ctx context.Context, id uuid.UUID) (*model.AuthorDetail, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, error)
	Update(ctx context.Context, a *model.Author) error
	Delete(ctx context.Context, id uuid.UUID) error
}
