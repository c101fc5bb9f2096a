package service

import (
	"context"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookclub-backend/internal/domains/author/model"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, a *model.Author) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockRepo) GetDetail(ctx context.Context, id uuid.UUID) (*model.AuthorDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthorDetail), args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, a *model.Author) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	repo.On("Create", ctx, mock.MatchedBy(func(a *model.Author) bool { return a.Name == "George Orwell" })).Return(nil)

	resp, err := NewAuthorService(repo).Create(ctx, model.CreateAuthorRequest{Name: "  George Orwell "})
	require.NoError(t, err)
	assert.Equal(t, "George Orwell", resp.Name)
	repo.AssertExpectations(t)
}

func TestCreate_Validation(t *testing.T) {
	repo := new(mockRepo)
	svc := NewAuthorService(repo)

	for _, name := range []string{"", "   ", strings.Repeat("x", 101)} {
		_, err := svc.Create(context.Background(), model.CreateAuthorRequest{Name: name})
		var errs validation.Errors
		require.ErrorAs(t, err, &errs, "name %q", name)
		assert.Contains(t, errs, "name")
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetByID_NestedBooks(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repo := new(mockRepo)
	repo.On("GetDetail", ctx, id).Return(&model.AuthorDetail{
		Author: model.Author{ID: id, Name: "Orwell", BooksCount: 1, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Books:  []model.BookSummary{{ID: uuid.New(), Title: "1984", PublicationYear: 1949}},
	}, nil)

	resp, err := NewAuthorService(repo).GetByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, resp.Books, 1)
	assert.Equal(t, "1984", resp.Books[0].Title)
}

func TestGetByID_NoBooksIsEmptySlice(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repo := new(mockRepo)
	repo.On("GetDetail", ctx, id).Return(&model.AuthorDetail{Author: model.Author{ID: id}}, nil)

	resp, err := NewAuthorService(repo).GetByID(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, resp.Books)
	assert.Empty(t, resp.Books)
}

func TestGetByID_NilID(t *testing.T) {
	_, err := NewAuthorService(new(mockRepo)).GetByID(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestUpdate_Partial(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	existing := &model.Author{ID: id, Name: "Old"}
	repo := new(mockRepo)
	repo.On("GetByID", ctx, id).Return(existing, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(a *model.Author) bool { return a.Name == "Old" })).Return(nil)

	resp, err := NewAuthorService(repo).Update(ctx, id, model.UpdateAuthorRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Old", resp.Name)
}

func TestUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	name := "New"
	repo := new(mockRepo)
	repo.On("GetByID", ctx, id).Return(nil, model.ErrAuthorNotFound)

	_, err := NewAuthorService(repo).Update(ctx, id, model.UpdateAuthorRequest{Name: &name})
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	filter := model.AuthorFilter{Search: "or", Ordering: "-name"}
	repo := new(mockRepo)
	repo.On("List", ctx, filter).Return([]model.Author{{ID: uuid.New(), Name: "Orwell"}}, nil)

	resp, err := NewAuthorService(repo).List(ctx, filter)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Orwell", resp[0].Name)
}
