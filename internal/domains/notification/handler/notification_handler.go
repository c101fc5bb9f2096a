package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/domains/notification/model"
	"bookclub-backend/internal/domains/notification/service"
	"bookclub-backend/internal/shared/middleware"
	"bookclub-backend/internal/shared/response"
)

type NotificationHandler struct {
	service service.NotificationService
}

func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: svc}
}

// List - GET /notifications?unread=true
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication credentials were not provided.")
		return
	}

	unreadOnly := false
	if raw := c.Query("unread"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(c, "unread must be true or false")
			return
		}
		unreadOnly = v
	}

	resp, err := h.service.List(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	response.List(c, resp, len(resp.Notifications))
}

// MarkRead - POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication credentials were not provided.")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, model.ErrNotificationNotFound.Error())
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"detail": "Notification marked as read."})
}

// MarkAllRead - POST /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication credentials were not provided.")
		return
	}

	resp, err := h.service.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func respondError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("notification request failed")
		response.ErrorResponse(c, status, model.ToErrorCode(err), "Internal server error")
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
