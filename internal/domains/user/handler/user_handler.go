package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/domains/user/model"
	"bookclub-backend/internal/domains/user/service"
	"bookclub-backend/internal/shared/middleware"
	"bookclub-backend/internal/shared/response"
)

// UserHandler handles accounts, profiles, the follow graph and role dashboards
type UserHandler struct {
	service service.Service
}

func NewUserHandler(svc service.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// ========================================
// AUTHENTICATION ENDPOINTS
// ========================================

// Register - POST /register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Login - POST /login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			log.Warn().
				Str("username", req.Username).
				Str("ip", c.GetString(middleware.ContextClientIP)).
				Msg("failed login")
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Logout - POST /logout, revokes the presented token
func (h *UserHandler) Logout(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		response.Unauthorized(c, model.ErrNotAuthenticated.Error())
		return
	}

	if err := h.service.Logout(c.Request.Context(), claims); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.MessageResponse{Detail: "Successfully logged out."})
}

// ========================================
// PROFILE ENDPOINTS
// ========================================

// GetProfile - GET /profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	resp, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// UpdateProfile - PUT/PATCH /profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req model.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetPublicProfile - GET /users/:username
func (h *UserHandler) GetPublicProfile(c *gin.Context) {
	var viewer *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		viewer = &id
	}

	resp, err := h.service.GetPublicProfile(c.Request.Context(), c.Param("username"), viewer)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========================================
// FOLLOW ENDPOINTS
// ========================================

// Follow - POST /follow/:username
func (h *UserHandler) Follow(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	resp, err := h.service.Follow(c.Request.Context(), userID, c.Param("username"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Unfollow - POST /unfollow/:username
func (h *UserHandler) Unfollow(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	resp, err := h.service.Unfollow(c.Request.Context(), userID, c.Param("username"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ListFollowers - GET /users/:username/followers
func (h *UserHandler) ListFollowers(c *gin.Context) {
	users, err := h.service.ListFollowers(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.List(c, users, len(users))
}

// ListFollowing - GET /users/:username/following
func (h *UserHandler) ListFollowing(c *gin.Context) {
	users, err := h.service.ListFollowing(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.List(c, users, len(users))
}

// ========================================
// ROLE ENDPOINTS
// ========================================

// Dashboard returns the handler for GET /dashboard/<area>; access is gated by RequireRole
func (h *UserHandler) Dashboard(area model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUser(c)
		if !ok {
			return
		}

		resp, err := h.service.Dashboard(c.Request.Context(), userID, area)
		if err != nil {
			h.handleError(c, err)
			return
		}

		response.Success(c, http.StatusOK, resp)
	}
}

// UpdateUserRole - PUT /admin/users/:id/role (staff only)
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, model.ErrUserNotFound.Error())
		return
	}

	var req model.UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.UpdateRole(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========================================
// HELPER FUNCTIONS
// ========================================

func requireUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, model.ErrNotAuthenticated.Error())
		return uuid.Nil, false
	}
	return userID, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}

// handleError maps domain errors to HTTP responses
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		response.ValidationError(c, fieldErrs)
		return
	}

	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("user request failed")
		response.ErrorResponse(c, status, model.ToErrorCode(err), "Internal server error")
		return
	}

	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
