package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/author/model"
	"bookclub-backend/internal/domains/author/repository"
)

type authorService struct {
	repo repository.RepositoryInterface
}

func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context, filter model.AuthorFilter) ([]model.AuthorResponse, error) {
	authors, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]model.AuthorResponse, 0, len(authors))
	for i := range authors {
		resp = append(resp, authors[i].ToResponse())
	}
	return resp, nil
}

// GetByID returns the author with nested books (repository handles cache + DB)
func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.AuthorDetailResponse, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}

	detail, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := detail.ToResponse()
	return &resp, nil
}

func (s *authorService) Create(ctx context.Context, req model.CreateAuthorRequest) (*model.AuthorResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	a := &model.Author{
		ID:        uuid.New(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	resp := a.ToResponse()
	return &resp, nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req model.UpdateAuthorRequest) (*model.AuthorResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	resp := a.ToResponse()
	return &resp, nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
