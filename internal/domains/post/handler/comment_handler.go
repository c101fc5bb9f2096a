package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/shared/response"
)

// ListComments - GET /comments?post=&search=
func (h *PostHandler) ListComments(c *gin.Context) {
	filter := model.CommentFilter{Search: c.Query("search")}
	if raw := c.Query("post"); raw != "" {
		postID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "post must be a valid id")
			return
		}
		filter.PostID = &postID
	}

	h.listComments(c, filter)
}

// ListPostComments - GET /posts/:id/comments
func (h *PostHandler) ListPostComments(c *gin.Context) {
	postID, ok := parseID(c, model.ErrPostNotFound)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.postService.GetPost(ctx, postID); err != nil {
		handleError(c, err)
		return
	}

	h.listComments(c, model.CommentFilter{PostID: &postID, Search: c.Query("search")})
}

func (h *PostHandler) listComments(c *gin.Context, filter model.CommentFilter) {
	comments, err := h.postService.ListComments(c.Request.Context(), filter)
	if err != nil {
		handleError(c, err)
		return
	}

	response.List(c, comments, len(comments))
}

// GetComment - GET /comments/:id
func (h *PostHandler) GetComment(c *gin.Context) {
	commentID, ok := parseID(c, model.ErrCommentNotFound)
	if !ok {
		return
	}

	comment, err := h.postService.GetComment(c.Request.Context(), commentID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comment)
}

// CreateComment - POST /comments {post, content}
func (h *PostHandler) CreateComment(c *gin.Context) {
	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	h.createComment(c, req)
}

// CreatePostComment - POST /posts/:id/comments {content}
func (h *PostHandler) CreatePostComment(c *gin.Context) {
	postID, ok := parseID(c, model.ErrPostNotFound)
	if !ok {
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	req.PostID = postID.String()

	h.createComment(c, req)
}

func (h *PostHandler) createComment(c *gin.Context, req model.CreateCommentRequest) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	comment, err := h.postService.CreateComment(c.Request.Context(), userID, req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, comment)
}

// UpdateComment - PUT/PATCH /comments/:id (owner only)
func (h *PostHandler) UpdateComment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	commentID, ok := parseID(c, model.ErrCommentNotFound)
	if !ok {
		return
	}

	var req model.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.postService.UpdateComment(c.Request.Context(), userID, commentID, req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comment)
}

// DeleteComment - DELETE /comments/:id (owner only)
func (h *PostHandler) DeleteComment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	commentID, ok := parseID(c, model.ErrCommentNotFound)
	if !ok {
		return
	}

	if err := h.postService.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		handleError(c, err)
		return
	}

	response.NoContent(c)
}
