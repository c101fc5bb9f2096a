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

	notificationRepo "bookclub-backend/internal/domains/notification/repository"
	"bookclub-backend/internal/domains/user/model"
	"bookclub-backend/internal/shared"
	"bookclub-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const userColumns = `id, username, email, password_hash, is_staff, is_active, last_login_at, created_at, updated_at`

// ========================================
// USERS
// ========================================

func (r *postgresRepository) CreateWithProfile(ctx context.Context, u *model.User, p *model.Profile) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO users (id, username, email, password_hash, is_staff, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			u.ID, u.Username, u.Email, u.PasswordHash, u.IsStaff, u.IsActive, u.CreatedAt, u.UpdatedAt,
		)
		if err != nil {
			return mapUniqueViolation(err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO profiles (user_id, role, bio, phone_number, location, website,
			                      date_of_birth, profile_photo_url, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			p.UserID, p.Role, p.Bio, p.PhoneNumber, p.Location, p.Website,
			p.DateOfBirth, p.ProfilePhotoURL, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}
		return nil
	})
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func (r *postgresRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE users SET last_login_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsStaff, &u.IsActive,
		&u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// ========================================
// PROFILES
// ========================================

func (r *postgresRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var p model.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, role, bio, phone_number, location, website,
		       date_of_birth, profile_photo_url, created_at, updated_at
		FROM profiles WHERE user_id = $1`, userID,
	).Scan(&p.UserID, &p.Role, &p.Bio, &p.PhoneNumber, &p.Location, &p.Website,
		&p.DateOfBirth, &p.ProfilePhotoURL, &p.CreatedAt, &p.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

func (r *postgresRepository) UpdateProfile(ctx context.Context, p *model.Profile, email *string) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		now := time.Now()

		if email != nil {
			tag, err := tx.Exec(ctx, `UPDATE users SET email = $2, updated_at = $3 WHERE id = $1`, p.UserID, *email, now)
			if err != nil {
				return mapUniqueViolation(err)
			}
			if tag.RowsAffected() == 0 {
				return model.ErrUserNotFound
			}
		}

		tag, err := tx.Exec(ctx, `
			UPDATE profiles
			SET bio = $2, phone_number = $3, location = $4, website = $5,
			    date_of_birth = $6, profile_photo_url = $7, updated_at = $8
			WHERE user_id = $1`,
			p.UserID, p.Bio, p.PhoneNumber, p.Location, p.Website, p.DateOfBirth, p.ProfilePhotoURL, now,
		)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrProfileNotFound
		}

		p.UpdatedAt = now
		return nil
	})
}

func (r *postgresRepository) UpdateRole(ctx context.Context, userID uuid.UUID, role model.Role) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE profiles SET role = $2, updated_at = NOW() WHERE user_id = $1`, userID, role)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// ========================================
// FOLLOW GRAPH
// ========================================

func (r *postgresRepository) Follow(ctx context.Context, followerID, followeeID uuid.UUID, ev *shared.NotificationEvent) (bool, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (bool, error) {
		tag, err := tx.Exec(ctx, `
			INSERT INTO follows (follower_id, followee_id)
			VALUES ($1, $2)
			ON CONFLICT (follower_id, followee_id) DO NOTHING`,
			followerID, followeeID,
		)
		if err != nil {
			return false, fmt.Errorf("insert follow: %w", err)
		}

		created := tag.RowsAffected() == 1
		if created {
			if err := notificationRepo.InsertEvent(ctx, tx, ev); err != nil {
				return false, err
			}
		}
		return created, nil
	})
}

func (r *postgresRepository) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`, followerID, followeeID)
	if err != nil {
		return false, fmt.Errorf("delete follow: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)`,
		followerID, followeeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check follow: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) CountFollows(ctx context.Context, userID uuid.UUID) (model.FollowCounts, error) {
	var counts model.FollowCounts
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM follows WHERE followee_id = $1),
			(SELECT COUNT(*) FROM follows WHERE follower_id = $1)`, userID,
	).Scan(&counts.Followers, &counts.Following)
	if err != nil {
		return counts, fmt.Errorf("count follows: %w", err)
	}
	return counts, nil
}

func (r *postgresRepository) ListFollowers(ctx context.Context, userID uuid.UUID) ([]shared.UserBasicInfo, error) {
	return r.listUsers(ctx, `
		SELECT u.id, u.username
		FROM follows f JOIN users u ON u.id = f.follower_id
		WHERE f.followee_id = $1
		ORDER BY f.created_at DESC`, userID)
}

func (r *postgresRepository) ListFollowing(ctx context.Context, userID uuid.UUID) ([]shared.UserBasicInfo, error) {
	return r.listUsers(ctx, `
		SELECT u.id, u.username
		FROM follows f JOIN users u ON u.id = f.followee_id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC`, userID)
}

func (r *postgresRepository) listUsers(ctx context.Context, query string, args ...any) ([]shared.UserBasicInfo, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (shared.UserBasicInfo, error) {
		var u shared.UserBasicInfo
		err := row.Scan(&u.ID, &u.Username)
		return u, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	return users, nil
}

// mapUniqueViolation translates users_* unique constraint violations into domain errors
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "users_username_key":
			return model.ErrUsernameTaken
		case "users_email_key":
			return model.ErrEmailTaken
		}
	}
	return fmt.Errorf("write user: %w", err)
}
