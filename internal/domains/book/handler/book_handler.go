package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/domains/book/model"
	"bookclub-backend/internal/domains/book/service"
	"bookclub-backend/internal/shared/response"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{service: svc}
}

// ListBooks - GET /books
// Query: publication_year (alias year), author, search, ordering
func (h *BookHandler) ListBooks(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	books, err := h.service.ListBooks(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.List(c, books, len(books))
}

// GetBook - GET /books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	book, err := h.service.GetBook(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book)
}

// CreateBook - POST /books, POST /books/create
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, book)
}

// UpdateBook - PUT/PATCH /books/:id, /books/:id/update, /books/update/:id
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	book, err := h.service.UpdateBook(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book)
}

// DeleteBook - DELETE /books/:id, /books/:id/delete, /books/delete/:id (staff only)
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// ============================================
// HELPERS
// ============================================

func parseFilter(c *gin.Context) (model.BookFilter, error) {
	filter := model.BookFilter{
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	}

	yearRaw := c.Query("publication_year")
	if yearRaw == "" {
		yearRaw = c.Query("year")
	}
	if yearRaw != "" {
		year, err := strconv.Atoi(yearRaw)
		if err != nil {
			return filter, errors.New("publication_year must be a number")
		}
		filter.PublicationYear = &year
	}

	if authorRaw := c.Query("author"); authorRaw != "" {
		authorID, err := uuid.Parse(authorRaw)
		if err != nil {
			return filter, errors.New("author must be a valid id")
		}
		filter.AuthorID = &authorID
	}

	return filter, nil
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, model.ErrBookNotFound.Error())
		return uuid.Nil, false
	}
	return id, true
}

func (h *BookHandler) handleError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		response.ValidationError(c, fieldErrs)
		return
	}

	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("book request failed")
		response.ErrorResponse(c, status, model.ToErrorCode(err), "Internal server error")
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
