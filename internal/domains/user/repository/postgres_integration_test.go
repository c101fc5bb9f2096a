//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookclub-backend/internal/domains/user/model"
	"bookclub-backend/internal/shared"
	"bookclub-backend/internal/testutil/pgtest"
)

func newUser(username, email string) *model.User {
	now := time.Now()
	return &model.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: "x",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestPostgresRepository(t *testing.T) {
	pool := pgtest.Start(t)
	ctx := context.Background()
	repo := NewPostgresRepository(pool)

	alice := newUser("alice", "alice@example.com")
	require.NoError(t, repo.CreateWithProfile(ctx, alice, model.NewProfile(alice.ID, alice.CreatedAt)))
	bob := newUser("bob", "bob@example.com")
	require.NoError(t, repo.CreateWithProfile(ctx, bob, model.NewProfile(bob.ID, bob.CreatedAt)))

	t.Run("profile defaults to member", func(t *testing.T) {
		p, err := repo.GetProfile(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, model.RoleMember, p.Role)
	})

	t.Run("duplicate username leaves no orphan rows", func(t *testing.T) {
		dup := newUser("alice", "other@example.com")
		err := repo.CreateWithProfile(ctx, dup, model.NewProfile(dup.ID, dup.CreatedAt))
		assert.ErrorIs(t, err, model.ErrUsernameTaken)

		_, err = repo.GetProfile(ctx, dup.ID)
		assert.ErrorIs(t, err, model.ErrProfileNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := newUser("alice2", "alice@example.com")
		err := repo.CreateWithProfile(ctx, dup, model.NewProfile(dup.ID, dup.CreatedAt))
		assert.ErrorIs(t, err, model.ErrEmailTaken)
	})

	t.Run("follow twice keeps one edge", func(t *testing.T) {
		ev := shared.NewNotificationEvent(bob.ID, alice.ID, shared.VerbFollowed, shared.TargetUser, &alice.ID)
		created, err := repo.Follow(ctx, alice.ID, bob.ID, ev)
		require.NoError(t, err)
		assert.True(t, created)

		created, err = repo.Follow(ctx, alice.ID, bob.ID, ev)
		require.NoError(t, err)
		assert.False(t, created)

		counts, err := repo.CountFollows(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, counts.Followers)
		assert.Equal(t, 0, counts.Following)

		followers, err := repo.ListFollowers(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, followers, 1)
		assert.Equal(t, "alice", followers[0].Username)

		var notifications int
		require.NoError(t, pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM notifications WHERE recipient_id = $1`, bob.ID).Scan(&notifications))
		assert.Equal(t, 1, notifications)
	})

	t.Run("unfollow", func(t *testing.T) {
		deleted, err := repo.Unfollow(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		following, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, following)
	})

	t.Run("role update", func(t *testing.T) {
		require.NoError(t, repo.UpdateRole(ctx, bob.ID, model.RoleLibrarian))
		p, err := repo.GetProfile(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, model.RoleLibrarian, p.Role)
	})
}
