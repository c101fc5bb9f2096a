package service

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/author/model"
)

type ServiceInterface interface {
	List(ctx context.Context, filter model.AuthorFilter) ([]model.AuthorResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.AuthorDetailResponse, error)
	Create(ctx context.Context, req model.CreateAuthorRequest) (*model.AuthorResponse, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateAuthorRequest) (*model.AuthorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
