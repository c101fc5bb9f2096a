package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/shared"
)

func TestCreateComment_NotifiesPostAuthor(t *testing.T) {
	ctx := context.Background()
	author, commenter := uuid.New(), uuid.New()
	post := &model.Post{ID: uuid.New(), AuthorID: author}

	repo := new(mockRepo)
	repo.On("GetPost", ctx, post.ID).Return(post, nil)
	repo.On("CreateComment", ctx,
		mock.MatchedBy(func(c *model.Comment) bool { return c.PostID == post.ID && c.Content == "Nice" }),
		mock.MatchedBy(func(ev *shared.NotificationEvent) bool {
			return ev != nil && ev.RecipientID == author && ev.Verb == shared.VerbCommented
		}),
	).Return(nil)

	resp, err := NewPostService(repo).CreateComment(ctx, commenter, model.CreateCommentRequest{
		PostID:  post.ID.String(),
		Content: " Nice ",
	})

	require.NoError(t, err)
	assert.Equal(t, post.ID, resp.Post)
	repo.AssertExpectations(t)
}

func TestCreateComment_OwnPostNoNotification(t *testing.T) {
	ctx := context.Background()
	author := uuid.New()
	post := &model.Post{ID: uuid.New(), AuthorID: author}

	repo := new(mockRepo)
	repo.On("GetPost", ctx, post.ID).Return(post, nil)
	repo.On("CreateComment", ctx, mock.Anything, (*shared.NotificationEvent)(nil)).Return(nil)

	_, err := NewPostService(repo).CreateComment(ctx, author, model.CreateCommentRequest{
		PostID:  post.ID.String(),
		Content: "note to self",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateComment_UnknownPost(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetPost", mock.Anything, mock.Anything).Return(nil, model.ErrPostNotFound)

	_, err := NewPostService(repo).CreateComment(context.Background(), uuid.New(), model.CreateCommentRequest{
		PostID:  uuid.NewString(),
		Content: "hello",
	})

	assert.ErrorIs(t, err, model.ErrPostNotFound)
}

func TestDeleteComment_Ownership(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	comment := &model.Comment{ID: uuid.New(), AuthorID: owner}

	repo := new(mockRepo)
	repo.On("GetComment", ctx, comment.ID).Return(comment, nil)
	repo.On("DeleteComment", ctx, comment.ID).Return(nil).Once()
	svc := NewPostService(repo)

	assert.ErrorIs(t, svc.DeleteComment(ctx, uuid.New(), comment.ID), model.ErrForbidden)
	assert.NoError(t, svc.DeleteComment(ctx, owner, comment.ID))
	repo.AssertNumberOfCalls(t, "DeleteComment", 1)
}

func TestUpdateComment_BlankContent(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	comment := &model.Comment{ID: uuid.New(), AuthorID: owner, Content: "first"}

	repo := new(mockRepo)
	repo.On("GetComment", ctx, comment.ID).Return(comment, nil)

	blank := "  "
	_, err := NewPostService(repo).UpdateComment(ctx, owner, comment.ID, model.UpdateCommentRequest{Content: &blank})

	require.Error(t, err)
	repo.AssertNotCalled(t, "UpdateComment", mock.Anything, mock.Anything)
}
