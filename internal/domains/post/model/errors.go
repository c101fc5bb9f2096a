package model

import (
	"errors"
	"net/http"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrForbidden       = errors.New("You do not have permission to perform this action.")
	ErrAlreadyLiked    = errors.New("You already liked this post.")
	ErrNotLiked        = errors.New("You have not liked this post.")
)

// Outcome messages of like/unlike
const (
	MsgPostLiked   = "Post liked!"
	MsgPostUnliked = "Post unliked!"
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrPostNotFound), errors.Is(err, ErrCommentNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrForbidden):
		return "FORBIDDEN"
	case errors.Is(err, ErrAlreadyLiked):
		return "ALREADY_LIKED"
	case errors.Is(err, ErrNotLiked):
		return "NOT_LIKED"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPostNotFound), errors.Is(err, ErrCommentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrAlreadyLiked), errors.Is(err, ErrNotLiked):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
