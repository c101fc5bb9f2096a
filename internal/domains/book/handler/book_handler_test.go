package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookclub-backend/internal/domains/book/model"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.BookResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]model.BookResponse), args.Error(1)
}

func (m *mockService) GetBook(ctx context.Context, id uuid.UUID) (*model.BookResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BookResponse), args.Error(1)
}

func (m *mockService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.BookResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BookResponse), args.Error(1)
}

func (m *mockService) UpdateBook(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) (*model.BookResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BookResponse), args.Error(1)
}

func (m *mockService) DeleteBook(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func setupRouter(h *BookHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/books", h.ListBooks)
	r.POST("/books/create", h.CreateBook)
	r.GET("/books/:id", h.GetBook)
	r.POST("/books", h.CreateBook)
	r.PATCH("/books/:id", h.UpdateBook)
	r.DELETE("/books/:id", h.DeleteBook)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListBooks_Filters(t *testing.T) {
	authorID := uuid.New()
	year := 1949
	svc := new(mockService)
	svc.On("ListBooks", mock.Anything, model.BookFilter{
		PublicationYear: &year,
		AuthorID:        &authorID,
		Search:          "orwell",
		Ordering:        "-publication_year",
	}).Return([]model.BookResponse{{Title: "1984"}}, nil)

	w := serve(setupRouter(NewBookHandler(svc)), http.MethodGet,
		"/books?year=1949&author="+authorID.String()+"&search=orwell&ordering=-publication_year", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
	svc.AssertExpectations(t)
}

func TestListBooks_BadFilter(t *testing.T) {
	svc := new(mockService)
	r := setupRouter(NewBookHandler(svc))

	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/books?publication_year=abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/books?author=7", "").Code)
	svc.AssertNotCalled(t, "ListBooks", mock.Anything, mock.Anything)
}

func TestCreateBook_AliasRoute(t *testing.T) {
	authorID := uuid.New()
	svc := new(mockService)
	svc.On("CreateBook", mock.Anything, mock.MatchedBy(func(req model.CreateBookRequest) bool {
		return req.Title == "1984" && req.AuthorID == authorID.String()
	})).Return(&model.BookResponse{Title: "1984", Author: authorID}, nil)

	body := `{"title":"1984","publication_year":1949,"author":"` + authorID.String() + `"}`
	w := serve(setupRouter(NewBookHandler(svc)), http.MethodPost, "/books/create", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestCreateBook_FutureYear(t *testing.T) {
	svc := new(mockService)
	svc.On("CreateBook", mock.Anything, mock.Anything).Return(nil, validation.Errors{
		"publication_year": validation.NewError("future", "Publication year cannot be in the future. Current year is 2026."),
	})

	w := serve(setupRouter(NewBookHandler(svc)), http.MethodPost, "/books", `{"title":"x","publication_year":3000}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, w.Body.String(), "Publication year cannot be in the future")
}

func TestCreateBook_UnknownAuthor(t *testing.T) {
	svc := new(mockService)
	svc.On("CreateBook", mock.Anything, mock.Anything).Return(nil, model.ErrAuthorNotFound)

	w := serve(setupRouter(NewBookHandler(svc)), http.MethodPost, "/books", `{"title":"x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_AUTHOR")
}

func TestGetBook_NotFound(t *testing.T) {
	id := uuid.New()
	svc := new(mockService)
	svc.On("GetBook", mock.Anything, id).Return(nil, model.ErrBookNotFound)

	w := serve(setupRouter(NewBookHandler(svc)), http.MethodGet, "/books/"+id.String(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBook_InternalErrorIsHidden(t *testing.T) {
	id := uuid.New()
	svc := new(mockService)
	svc.On("GetBook", mock.Anything, id).Return(nil, assert.AnError)

	w := serve(setupRouter(NewBookHandler(svc)), http.MethodGet, "/books/"+id.String(), "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestDeleteBook(t *testing.T) {
	id := uuid.New()
	svc := new(mockService)
	svc.On("DeleteBook", mock.Anything, id).Return(nil)

	w := serve(setupRouter(NewBookHandler(svc)), http.MethodDelete, "/books/"+id.String(), "")

	assert.Equal(t, http.StatusNoContent, w.Code)
}
