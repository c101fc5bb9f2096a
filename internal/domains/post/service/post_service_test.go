package service

import (
	"context"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/shared"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) ListPosts(ctx context.Context, filter model.PostFilter) ([]model.Post, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *mockRepo) GetPost(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *mockRepo) CreatePost(ctx context.Context, p *model.Post) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockRepo) UpdatePost(ctx context.Context, p *model.Post) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockRepo) DeletePost(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) Feed(ctx context.Context, userID uuid.UUID) ([]model.Post, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *mockRepo) ListComments(ctx context.Context, filter model.CommentFilter) ([]model.Comment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *mockRepo) GetComment(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *mockRepo) CreateComment(ctx context.Context, c *model.Comment, ev *shared.NotificationEvent) error {
	return m.Called(ctx, c, ev).Error(0)
}

func (m *mockRepo) UpdateComment(ctx context.Context, c *model.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepo) DeleteComment(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) Like(ctx context.Context, userID, postID uuid.UUID, ev *shared.NotificationEvent) (bool, error) {
	args := m.Called(ctx, userID, postID, ev)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) Unlike(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

// =====================================================
// LIKES
// =====================================================

func TestLikePost_NotifiesAuthor(t *testing.T) {
	ctx := context.Background()
	author, liker := uuid.New(), uuid.New()
	post := &model.Post{ID: uuid.New(), AuthorID: author}

	repo := new(mockRepo)
	repo.On("GetPost", ctx, post.ID).Return(post, nil)
	repo.On("Like", ctx, liker, post.ID, mock.MatchedBy(func(ev *shared.NotificationEvent) bool {
		return ev != nil && ev.RecipientID == author && ev.ActorID == liker &&
			ev.Verb == shared.VerbLiked && *ev.TargetID == post.ID
	})).Return(true, nil)

	resp, err := NewPostService(repo).LikePost(ctx, liker, post.ID)

	require.NoError(t, err)
	assert.Equal(t, "Post liked!", resp.Detail)
	repo.AssertExpectations(t)
}

func TestLikePost_SelfLikeHasNoNotification(t *testing.T) {
	ctx := context.Background()
	author := uuid.New()
	post := &model.Post{ID: uuid.New(), AuthorID: author}

	repo := new(mockRepo)
	repo.On("GetPost", ctx, post.ID).Return(post, nil)
	repo.On("Like", ctx, author, post.ID, (*shared.NotificationEvent)(nil)).Return(true, nil)

	_, err := NewPostService(repo).LikePost(ctx, author, post.ID)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestLikePost_Duplicate(t *testing.T) {
	ctx := context.Background()
	post := &model.Post{ID: uuid.New(), AuthorID: uuid.New()}

	repo := new(mockRepo)
	repo.On("GetPost", ctx, post.ID).Return(post, nil)
	repo.On("Like", ctx, mock.Anything, post.ID, mock.Anything).Return(false, nil)

	_, err := NewPostService(repo).LikePost(ctx, uuid.New(), post.ID)

	assert.ErrorIs(t, err, model.ErrAlreadyLiked)
	assert.EqualError(t, err, "You already liked this post.")
}

func TestLikePost_UnknownPost(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetPost", mock.Anything, mock.Anything).Return(nil, model.ErrPostNotFound)

	_, err := NewPostService(repo).LikePost(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, model.ErrPostNotFound)
	repo.AssertNotCalled(t, "Like", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUnlikePost(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()
	post := &model.Post{ID: uuid.New(), AuthorID: uuid.New()}

	repo := new(mockRepo)
	repo.On("GetPost", ctx, post.ID).Return(post, nil)
	repo.On("Unlike", ctx, user, post.ID).Return(true, nil).Once()
	repo.On("Unlike", ctx, user, post.ID).Return(false, nil).Once()
	svc := NewPostService(repo)

	resp, err := svc.UnlikePost(ctx, user, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Post unliked!", resp.Detail)

	_, err = svc.UnlikePost(ctx, user, post.ID)
	assert.ErrorIs(t, err, model.ErrNotLiked)
}

// =====================================================
// OWNERSHIP
// =====================================================

func TestUpdatePost_NonOwnerForbidden(t *testing.T) {
	ctx := context.Background()
	post := &model.Post{ID: uuid.New(), AuthorID: uuid.New(), Title: "Mine"}

	repo := new(mockRepo)
	repo.On("GetPost", ctx, post.ID).Return(post, nil)

	title := "Hijacked"
	_, err := NewPostService(repo).UpdatePost(ctx, uuid.New(), post.ID, model.UpdatePostRequest{Title: &title})

	assert.ErrorIs(t, err, model.ErrForbidden)
	assert.Equal(t, "Mine", post.Title)
	repo.AssertNotCalled(t, "UpdatePost", mock.Anything, mock.Anything)
}

func TestUpdatePost_OwnerPartialUpdate(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	post := &model.Post{ID: uuid.New(), AuthorID: owner, Title: "Old", Content: "Body"}

	repo := new(mockRepo)
	repo.On("GetPost", ctx, post.ID).Return(post, nil)
	repo.On("UpdatePost", ctx, mock.MatchedBy(func(p *model.Post) bool {
		return p.Title == "New" && p.Content == "Body"
	})).Return(nil)

	title := " New "
	resp, err := NewPostService(repo).UpdatePost(ctx, owner, post.ID, model.UpdatePostRequest{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "New", resp.Title)
	repo.AssertExpectations(t)
}

func TestDeletePost_NonOwnerForbidden(t *testing.T) {
	ctx := context.Background()
	post := &model.Post{ID: uuid.New(), AuthorID: uuid.New()}

	repo := new(mockRepo)
	repo.On("GetPost", ctx, post.ID).Return(post, nil)

	err := NewPostService(repo).DeletePost(ctx, uuid.New(), post.ID)

	assert.ErrorIs(t, err, model.ErrForbidden)
	repo.AssertNotCalled(t, "DeletePost", mock.Anything, mock.Anything)
}

func TestCreatePost_Validation(t *testing.T) {
	repo := new(mockRepo)

	_, err := NewPostService(repo).CreatePost(context.Background(), uuid.New(), model.CreatePostRequest{Title: " "})

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "content")
	repo.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
}

func TestFeed_PassesThroughOrder(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()
	newer := model.Post{ID: uuid.New(), Title: "newer"}
	older := model.Post{ID: uuid.New(), Title: "older"}

	repo := new(mockRepo)
	repo.On("Feed", ctx, user).Return([]model.Post{newer, older}, nil)

	feed, err := NewPostService(repo).Feed(ctx, user)

	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "newer", feed[0].Title)
	assert.Equal(t, "older", feed[1].Title)
}

func TestFeed_EmptyIsNotNil(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Feed", mock.Anything, mock.Anything).Return([]model.Post(nil), nil)

	feed, err := NewPostService(repo).Feed(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, feed)
	assert.Empty(t, feed)
}
