package repository

import (
	"context"

	"bookclub-backend/internal/domains/item/model"
)

type ItemRepository interface {
	// List filters by a case-insensitive name fragment when name is not empty
	List(ctx context.Context, name string) ([]model.Item, error)
	Create(ctx context.Context, item *model.Item) error
}
