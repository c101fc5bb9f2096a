package service

import (
	"context"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookclub-backend/internal/domains/item/model"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) List(ctx context.Context, name string) ([]model.Item, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, item *model.Item) error {
	return m.Called(ctx, item).Error(0)
}

func TestCreate_NameTooShort(t *testing.T) {
	repo := new(mockRepo)

	for _, name := range []string{"", "abcd", "  abc  "} {
		_, err := NewItemService(repo).Create(context.Background(), model.CreateItemRequest{Name: name})

		var errs validation.Errors
		require.ErrorAs(t, err, &errs, "name %q", name)
		assert.EqualError(t, errs["name"], "Name must be at least 5 characters long.")
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	repo.On("Create", ctx, mock.MatchedBy(func(i *model.Item) bool { return i.Name == "Widget" })).Return(nil)

	item, err := NewItemService(repo).Create(ctx, model.CreateItemRequest{Name: "Widget", Description: "blue"})

	require.NoError(t, err)
	assert.Equal(t, "Widget", item.Name)
	assert.NotZero(t, item.ID)
	repo.AssertExpectations(t)
}

func TestList_EmptyIsNotNil(t *testing.T) {
	repo := new(mockRepo)
	repo.On("List", mock.Anything, "gadget").Return([]model.Item(nil), nil)

	items, err := NewItemService(repo).List(context.Background(), "gadget")

	require.NoError(t, err)
	assert.NotNil(t, items)
}
