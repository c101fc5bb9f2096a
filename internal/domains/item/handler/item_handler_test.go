package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookclub-backend/internal/domains/item/model"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, name string) ([]model.Item, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *mockService) Create(ctx context.Context, req model.CreateItemRequest) (*model.Item, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func setupRouter(h *ItemHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/items", h.List)
	r.POST("/items", h.Create)
	return r
}

func TestList_NameFilter(t *testing.T) {
	svc := new(mockService)
	svc.On("List", mock.Anything, "wid").Return([]model.Item{{Name: "Widget"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/items?name=wid", nil)
	w := httptest.NewRecorder()
	setupRouter(NewItemHandler(svc)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Widget")
}

func TestCreate_ShortName(t *testing.T) {
	svc := new(mockService)
	svc.On("Create", mock.Anything, model.CreateItemRequest{Name: "abcd"}).Return(nil, validation.Errors{
		"name": validation.NewError("min", "Name must be at least 5 characters long."),
	})

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"name":"abcd"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	setupRouter(NewItemHandler(svc)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Name must be at least 5 characters long.")
}
