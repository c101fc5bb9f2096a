package service

import (
	"context"

	"bookclub-backend/internal/domains/item/model"
	"bookclub-backend/internal/domains/item/repository"
)

type Service interface {
	List(ctx context.Context, name string) ([]model.Item, error)
	Create(ctx context.Context, req model.CreateItemRequest) (*model.Item, error)
}

type itemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) Service {
	return &itemService{repo: repo}
}

func (s *itemService) List(ctx context.Context, name string) ([]model.Item, error) {
	items, err := s.repo.List(ctx, name)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

func (s *itemService) Create(ctx context.Context, req model.CreateItemRequest) (*model.Item, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item := req.ToItem()
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}
