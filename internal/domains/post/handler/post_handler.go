package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/domains/post/service"
	"bookclub-backend/internal/shared/middleware"
	"bookclub-backend/internal/shared/response"
)

// =====================================================
// POST HANDLER
// =====================================================

type PostHandler struct {
	postService service.ServiceInterface
}

func NewPostHandler(postService service.ServiceInterface) *PostHandler {
	return &PostHandler{postService: postService}
}

// ListPosts - GET /posts?search=&author=
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context(), model.PostFilter{
		Search: c.Query("search"),
		Author: c.Query("author"),
	})
	if err != nil {
		handleError(c, err)
		return
	}

	response.List(c, posts, len(posts))
}

// GetPost - GET /posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, ok := parseID(c, model.ErrPostNotFound)
	if !ok {
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// CreatePost - POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), userID, req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, post)
}

// UpdatePost - PUT/PATCH /posts/:id (owner only)
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	postID, ok := parseID(c, model.ErrPostNotFound)
	if !ok {
		return
	}

	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), userID, postID, req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// DeletePost - DELETE /posts/:id (owner only)
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	postID, ok := parseID(c, model.ErrPostNotFound)
	if !ok {
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), userID, postID); err != nil {
		handleError(c, err)
		return
	}

	response.NoContent(c)
}

// Feed - GET /feed
func (h *PostHandler) Feed(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	posts, err := h.postService.Feed(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.List(c, posts, len(posts))
}

// LikePost - POST /posts/:id/like
func (h *PostHandler) LikePost(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	postID, ok := parseID(c, model.ErrPostNotFound)
	if !ok {
		return
	}

	resp, err := h.postService.LikePost(c.Request.Context(), userID, postID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// UnlikePost - POST /posts/:id/unlike
func (h *PostHandler) UnlikePost(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	postID, ok := parseID(c, model.ErrPostNotFound)
	if !ok {
		return
	}

	resp, err := h.postService.UnlikePost(c.Request.Context(), userID, postID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// =====================================================
// HELPER FUNCTIONS
// =====================================================

func requireUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication credentials were not provided.")
		return uuid.Nil, false
	}
	return userID, true
}

// parseID treats a malformed id like a missing row
func parseID(c *gin.Context, notFound error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, notFound.Error())
		return uuid.Nil, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		response.ValidationError(c, fieldErrs)
		return
	}

	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("post request failed")
		response.ErrorResponse(c, status, model.ToErrorCode(err), "Internal server error")
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
