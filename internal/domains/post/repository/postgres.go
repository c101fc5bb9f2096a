package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	notificationRepo "bookclub-backend/internal/domains/notification/repository"
	"bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/shared"
	"bookclub-backend/internal/shared/utils"
	"bookclub-backend/pkg/database"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postgresPostRepository{pool: pool}
}

const postColumns = `
	p.id, p.author_id, u.username, p.title, p.content,
	(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id),
	(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id),
	p.created_at, p.updated_at`

const commentColumns = `c.id, c.post_id, c.author_id, u.username, c.content, c.created_at, c.updated_at`

// =====================================================
// POSTS
// =====================================================

func (r *postgresPostRepository) ListPosts(ctx context.Context, filter model.PostFilter) ([]model.Post, error) {
	var where utils.WhereBuilder
	if filter.Search != "" {
		p := where.Arg(utils.ContainsPattern(filter.Search))
		where.Add("(" + utils.JoinWithOr([]string{"p.title ILIKE " + p, "p.content ILIKE " + p}) + ")")
	}
	if filter.Author != "" {
		where.Add("u.username = " + where.Arg(filter.Author))
	}

	query := `SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id` +
		where.SQL() +
		` ORDER BY p.created_at DESC, p.id DESC`

	return r.queryPosts(ctx, query, where.Args()...)
}

func (r *postgresPostRepository) Feed(ctx context.Context, userID uuid.UUID) ([]model.Post, error) {
	query := `SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		JOIN follows f ON f.followee_id = p.author_id AND f.follower_id = $1
		ORDER BY p.created_at DESC, p.id DESC`

	return r.queryPosts(ctx, query, userID)
}

func (r *postgresPostRepository) GetPost(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+postColumns+`
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1`, id)

	p, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

func (r *postgresPostRepository) CreatePost(ctx context.Context, p *model.Post) error {
	row := r.pool.QueryRow(ctx, `
		WITH p AS (
			INSERT INTO posts (id, author_id, title, content, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		)
		SELECT `+postColumns+` FROM p JOIN users u ON u.id = p.author_id`,
		p.ID, p.AuthorID, p.Title, p.Content, p.CreatedAt, p.UpdatedAt,
	)

	saved, err := scanPost(row)
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	*p = *saved
	return nil
}

func (r *postgresPostRepository) UpdatePost(ctx context.Context, p *model.Post) error {
	row := r.pool.QueryRow(ctx, `
		WITH p AS (
			UPDATE posts SET title = $2, content = $3, updated_at = $4
			WHERE id = $1
			RETURNING *
		)
		SELECT `+postColumns+` FROM p JOIN users u ON u.id = p.author_id`,
		p.ID, p.Title, p.Content, p.UpdatedAt,
	)

	saved, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrPostNotFound
	}
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	*p = *saved
	return nil
}

func (r *postgresPostRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

// =====================================================
// COMMENTS
// =====================================================

func (r *postgresPostRepository) ListComments(ctx context.Context, filter model.CommentFilter) ([]model.Comment, error) {
	var where utils.WhereBuilder
	if filter.PostID != nil {
		where.Add("c.post_id = " + where.Arg(*filter.PostID))
	}
	if filter.Search != "" {
		where.Add("c.content ILIKE " + where.Arg(utils.ContainsPattern(filter.Search)))
	}

	query := `SELECT ` + commentColumns + `
		FROM comments c
		JOIN users u ON u.id = c.author_id` +
		where.SQL() +
		` ORDER BY c.created_at ASC, c.id ASC`

	rows, err := r.pool.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Comment, error) {
		c, err := scanComment(row)
		if err != nil {
			return model.Comment{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan comments: %w", err)
	}
	return comments, nil
}

func (r *postgresPostRepository) GetComment(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+commentColumns+`
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1`, id)

	c, err := scanComment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return c, nil
}

func (r *postgresPostRepository) CreateComment(ctx context.Context, c *model.Comment, ev *shared.NotificationEvent) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			WITH c AS (
				INSERT INTO comments (id, post_id, author_id, content, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING *
			)
			SELECT `+commentColumns+` FROM c JOIN users u ON u.id = c.author_id`,
			c.ID, c.PostID, c.AuthorID, c.Content, c.CreatedAt, c.UpdatedAt,
		)

		saved, err := scanComment(row)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				// post removed between lookup and insert
				return model.ErrPostNotFound
			}
			return fmt.Errorf("create comment: %w", err)
		}
		*c = *saved

		return notificationRepo.InsertEvent(ctx, tx, ev)
	})
}

func (r *postgresPostRepository) UpdateComment(ctx context.Context, c *model.Comment) error {
	row := r.pool.QueryRow(ctx, `
		WITH c AS (
			UPDATE comments SET content = $2, updated_at = $3
			WHERE id = $1
			RETURNING *
		)
		SELECT `+commentColumns+` FROM c JOIN users u ON u.id = c.author_id`,
		c.ID, c.Content, c.UpdatedAt,
	)

	saved, err := scanComment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrCommentNotFound
	}
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	*c = *saved
	return nil
}

func (r *postgresPostRepository) DeleteComment(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}

// =====================================================
// LIKES
// =====================================================

// Like relies on likes_user_post_key, concurrent duplicates resolve to a single row
func (r *postgresPostRepository) Like(ctx context.Context, userID, postID uuid.UUID, ev *shared.NotificationEvent) (bool, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (bool, error) {
		var id uuid.UUID
		err := tx.QueryRow(ctx, `
			INSERT INTO likes (id, user_id, post_id)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, post_id) DO NOTHING
			RETURNING id`,
			uuid.New(), userID, postID,
		).Scan(&id)

		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return false, model.ErrPostNotFound
			}
			return false, fmt.Errorf("insert like: %w", err)
		}

		if err := notificationRepo.InsertEvent(ctx, tx, ev); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (r *postgresPostRepository) Unlike(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`, userID, postID)
	if err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// =====================================================
// HELPER METHODS
// =====================================================

func (r *postgresPostRepository) queryPosts(ctx context.Context, query string, args ...any) ([]model.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}

	posts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Post, error) {
		p, err := scanPost(row)
		if err != nil {
			return model.Post{}, err
		}
		return *p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan posts: %w", err)
	}
	return posts, nil
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var p model.Post
	err := row.Scan(
		&p.ID, &p.AuthorID, &p.AuthorUsername, &p.Title, &p.Content,
		&p.LikesCount, &p.CommentsCount,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	err := row.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.AuthorUsername, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
