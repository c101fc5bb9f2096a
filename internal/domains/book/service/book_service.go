package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/domains/book/model"
	"bookclub-backend/internal/domains/book/repository"
)

type bookService struct {
	repo repository.RepositoryInterface
}

func NewBookService(repo repository.RepositoryInterface) ServiceInterface {
	return &bookService{repo: repo}
}

func (s *bookService) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.BookResponse, error) {
	books, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]model.BookResponse, 0, len(books))
	for i := range books {
		resp = append(resp, books[i].ToResponse())
	}
	return resp, nil
}

func (s *bookService) GetBook(ctx context.Context, id uuid.UUID) (*model.BookResponse, error) {
	b, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := b.ToResponse()
	return &resp, nil
}

func (s *bookService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.BookResponse, error) {
	// 1. VALIDATE (publication year is checked against the current year on every call)
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. PERSIST, isbn uniqueness and author existence are enforced by constraints
	b := req.ToBook()
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	log.Info().Str("book_id", b.ID.String()).Str("title", b.Title).Msg("book created")

	resp := b.ToResponse()
	return &resp, nil
}

func (s *bookService) UpdateBook(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) (*model.BookResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousAuthor := b.AuthorID

	req.Apply(b)
	if err := s.repo.Update(ctx, b, previousAuthor); err != nil {
		return nil, err
	}

	resp := b.ToResponse()
	return &resp, nil
}

func (s *bookService) DeleteBook(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("book_id", id.String()).Msg("book deleted")
	return nil
}
