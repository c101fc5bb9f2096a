package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/domains/book/model"
	"bookclub-backend/internal/shared"
	"bookclub-backend/internal/shared/utils"
	"bookclub-backend/pkg/cache"
)

// postgresRepository - Raw SQL with pgxpool, detail reads go through the cache
type postgresRepository struct {
	pool     *pgxpool.Pool
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache, cacheTTL time.Duration) RepositoryInterface {
	return &postgresRepository{
		pool:     pool,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

var orderingColumns = map[string]string{
	"title":            "b.title",
	"publication_year": "b.publication_year",
	"price":            "b.price",
	"created_at":       "b.created_at",
}

const bookColumns = `b.id, b.title, b.publication_year, b.isbn, b.price, b.author_id, a.name, b.created_at, b.updated_at`

// ============================================
// LIST BOOKS
// ============================================

func (r *postgresRepository) List(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	whereClause, args := r.buildWhereClause(filter)
	orderBy := utils.ParseOrdering(filter.Ordering, orderingColumns, "b.title ASC")

	query := `SELECT ` + bookColumns + `
		FROM books b
		JOIN authors a ON a.id = b.author_id` +
		whereClause +
		` ORDER BY ` + orderBy + `, b.id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Book, error) {
		b, err := scanBook(row)
		if err != nil {
			return model.Book{}, err
		}
		return *b, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan books: %w", err)
	}
	return books, nil
}

func (r *postgresRepository) buildWhereClause(filter model.BookFilter) (string, []any) {
	var where utils.WhereBuilder

	if filter.PublicationYear != nil {
		where.Add("b.publication_year = " + where.Arg(*filter.PublicationYear))
	}
	if filter.AuthorID != nil {
		where.Add("b.author_id = " + where.Arg(*filter.AuthorID))
	}
	if filter.Search != "" {
		p := where.Arg(utils.ContainsPattern(filter.Search))
		where.Add("(" + utils.JoinWithOr([]string{"b.title ILIKE " + p, "a.name ILIKE " + p}) + ")")
	}

	return where.SQL(), where.Args()
}

// ============================================
// DETAIL
// ============================================

func (r *postgresRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	cacheKey := shared.BookDetailKey(id)

	var cached model.Book
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	} else if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("book cache read failed")
	}

	b, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey, b, r.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("book cache write failed")
	}
	return b, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bookColumns+`
		FROM books b
		JOIN authors a ON a.id = b.author_id
		WHERE b.id = $1`, id)

	b, err := scanBook(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

// ============================================
// WRITES
// ============================================

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) error {
	row := r.pool.QueryRow(ctx, `
		WITH b AS (
			INSERT INTO books (id, title, publication_year, isbn, price, author_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)
		SELECT `+bookColumns+` FROM b JOIN authors a ON a.id = b.author_id`,
		b.ID, b.Title, b.PublicationYear, b.ISBN, b.Price, b.AuthorID, b.CreatedAt, b.UpdatedAt,
	)

	saved, err := scanBook(row)
	if err != nil {
		return mapWriteError(err)
	}
	*b = *saved

	r.invalidate(ctx, b.ID, b.AuthorID)
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book, previousAuthorID uuid.UUID) error {
	row := r.pool.QueryRow(ctx, `
		WITH b AS (
			UPDATE books
			SET title = $2, publication_year = $3, isbn = $4, price = $5, author_id = $6, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT `+bookColumns+` FROM b JOIN authors a ON a.id = b.author_id`,
		b.ID, b.Title, b.PublicationYear, b.ISBN, b.Price, b.AuthorID,
	)

	saved, err := scanBook(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrBookNotFound
	}
	if err != nil {
		return mapWriteError(err)
	}
	*b = *saved

	r.invalidate(ctx, b.ID, b.AuthorID, previousAuthorID)
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var authorID uuid.UUID
	err := r.pool.QueryRow(ctx, `DELETE FROM books WHERE id = $1 RETURNING author_id`, id).Scan(&authorID)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrBookNotFound
	}
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	r.invalidate(ctx, id, authorID)
	return nil
}

// ============================================
// HELPER METHODS
// ============================================

// invalidate drops the book detail and the detail of every author whose nested list changed
func (r *postgresRepository) invalidate(ctx context.Context, bookID uuid.UUID, authorIDs ...uuid.UUID) {
	keys := []string{shared.BookDetailKey(bookID)}
	for _, id := range authorIDs {
		if id != uuid.Nil {
			keys = append(keys, shared.AuthorDetailKey(id))
		}
	}

	if err := r.cache.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("book cache invalidation failed")
	}
}

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	err := row.Scan(&b.ID, &b.Title, &b.PublicationYear, &b.ISBN, &b.Price,
		&b.AuthorID, &b.AuthorName, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// mapWriteError translates constraint violations: isbn unique → 23505, unknown author → 23503
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == "books_isbn_key":
			return model.ErrDuplicateISBN
		case pgErr.Code == "23503":
			return model.ErrAuthorNotFound
		}
	}
	return fmt.Errorf("write book: %w", err)
}
