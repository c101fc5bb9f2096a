package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/domains/author/model"
	"bookclub-backend/internal/shared"
	"bookclub-backend/internal/shared/utils"
	"bookclub-backend/pkg/cache"
)

type postgresRepository struct {
	pool     *pgxpool.Pool
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewPostgresRepository - receives pool and cache from the container
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache, cacheTTL time.Duration) RepositoryInterface {
	return &postgresRepository{pool: pool, cache: c, cacheTTL: cacheTTL}
}

var orderingColumns = map[string]string{
	"name":       "a.name",
	"created_at": "a.created_at",
}

const selectAuthor = `
	SELECT a.id, a.name,
	       (SELECT COUNT(*) FROM books b WHERE b.author_id = a.id) AS books_count,
	       a.created_at, a.updated_at
	FROM authors a
`

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO authors (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`,
		a.ID, a.Name, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create author: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	a, err := scanAuthor(r.pool.QueryRow(ctx, selectAuthor+` WHERE a.id = $1`, id))
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *postgresRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.AuthorDetail, error) {
	// Try cache first
	cacheKey := shared.AuthorDetailKey(id)
	var detail model.AuthorDetail
	if found, err := r.cache.Get(ctx, cacheKey, &detail); err == nil && found {
		return &detail, nil
	} else if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("author cache read failed")
	}

	a, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	books, err := r.listBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	detail = model.AuthorDetail{Author: *a, Books: books}

	// Store in cache for next time
	if err := r.cache.Set(ctx, cacheKey, detail, r.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("author cache write failed")
	}
	return &detail, nil
}

func (r *postgresRepository) listBooks(ctx context.Context, authorID uuid.UUID) ([]model.BookSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, publication_year, isbn, price
		FROM books
		WHERE author_id = $1
		ORDER BY publication_year, title`, authorID)
	if err != nil {
		return nil, fmt.Errorf("list author books: %w", err)
	}

	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.BookSummary, error) {
		var b model.BookSummary
		err := row.Scan(&b.ID, &b.Title, &b.PublicationYear, &b.ISBN, &b.Price)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan author books: %w", err)
	}
	return books, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, error) {
	var where utils.WhereBuilder
	if filter.Search != "" {
		where.Add("a.name ILIKE " + where.Arg(utils.ContainsPattern(filter.Search)))
	}
	orderBy := utils.ParseOrdering(filter.Ordering, orderingColumns, "a.name ASC")

	query := selectAuthor + where.SQL() + " ORDER BY " + orderBy + ", a.id"

	rows, err := r.pool.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}

	authors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Author, error) {
		var a model.Author
		err := row.Scan(&a.ID, &a.Name, &a.BooksCount, &a.CreatedAt, &a.UpdatedAt)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan authors: %w", err)
	}
	return authors, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE authors SET name = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		a.ID, a.Name,
	).Scan(&a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrAuthorNotFound
	}
	if err != nil {
		return fmt.Errorf("update author: %w", err)
	}

	r.invalidate(ctx, a.ID)
	return nil
}

// Delete removes the author; books cascade
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

// invalidate drops the author detail and every book detail (they embed the author name)
func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, shared.AuthorDetailKey(id)); err != nil {
		log.Warn().Err(err).Msg("author cache invalidation failed")
	}
	if err := r.cache.DeletePattern(ctx, shared.BookDetailKeyPrefix+"*"); err != nil {
		log.Warn().Err(err).Msg("book cache invalidation failed")
	}
}

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	err := row.Scan(&a.ID, &a.Name, &a.BooksCount, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan author: %w", err)
	}
	return &a, nil
}
