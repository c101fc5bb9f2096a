package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookclub-backend/internal/domains/item/model"
	"bookclub-backend/internal/shared/utils"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) ItemRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context, name string) ([]model.Item, error) {
	var where utils.WhereBuilder
	if name != "" {
		where.Add("name ILIKE " + where.Arg(utils.ContainsPattern(name)))
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, created_at
		FROM items`+where.SQL()+`
		ORDER BY created_at, id`, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.Item])
	if err != nil {
		return nil, fmt.Errorf("scan items: %w", err)
	}
	return items, nil
}

func (r *postgresRepository) Create(ctx context.Context, item *model.Item) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO items (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)`,
		item.ID, item.Name, item.Description, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}
