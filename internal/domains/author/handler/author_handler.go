package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/domains/author/model"
	"bookclub-backend/internal/domains/author/service"
	"bookclub-backend/internal/shared/response"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /authors?search=&ordering=
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	filter := model.AuthorFilter{
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	}

	authors, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.List(c, authors, len(authors))
}

// ════════════════════════════════════════════════════════════════
// READ: GET /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT/PATCH /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /authors/:id (staff only)
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, model.ErrAuthorNotFound.Error())
		return uuid.Nil, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		response.ValidationError(c, fieldErrs)
		return
	}

	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("author request failed")
		response.ErrorResponse(c, status, model.ToErrorCode(err), "Internal server error")
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
