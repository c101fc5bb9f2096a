package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/domains/item/model"
	"bookclub-backend/internal/domains/item/service"
	"bookclub-backend/internal/shared/response"
)

// ItemHandler handles HTTP requests for items
type ItemHandler struct {
	service service.Service
}

func NewItemHandler(svc service.Service) *ItemHandler {
	return &ItemHandler{service: svc}
}

// List handles GET /items?name=
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.List(c, items, len(items))
}

// Create handles POST /items
func (h *ItemHandler) Create(c *gin.Context) {
	var req model.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, item)
}

func (h *ItemHandler) handleError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		response.ValidationError(c, fieldErrs)
		return
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("item request failed")
	response.ErrorResponse(c, model.ToHTTPStatus(err), "INTERNAL_ERROR", "Internal server error")
}
