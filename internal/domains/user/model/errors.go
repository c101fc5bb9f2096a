package model

import (
	"errors"
	"net/http"
)

var (
	ErrUserNotFound       = errors.New("User not found")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUsernameTaken      = errors.New("A user with that username already exists.")
	ErrEmailTaken         = errors.New("A user with that email already exists.")
	ErrCannotFollowSelf   = errors.New("You cannot follow yourself")
	ErrCannotUnfollowSelf = errors.New("You cannot unfollow yourself")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidRole        = errors.New("invalid role")
	ErrNotAuthenticated   = errors.New("Authentication credentials were not provided.")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrProfileNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInvalidCredentials):
		return "INVALID_CREDENTIALS"
	case errors.Is(err, ErrUsernameTaken):
		return "USERNAME_TAKEN"
	case errors.Is(err, ErrEmailTaken):
		return "EMAIL_TAKEN"
	case errors.Is(err, ErrCannotFollowSelf), errors.Is(err, ErrCannotUnfollowSelf):
		return "CANNOT_FOLLOW_SELF"
	case errors.Is(err, ErrInvalidRole):
		return "INVALID_ROLE"
	case errors.Is(err, ErrNotAuthenticated):
		return "UNAUTHORIZED"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUsernameTaken),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrCannotFollowSelf),
		errors.Is(err, ErrCannotUnfollowSelf),
		errors.Is(err, ErrInvalidRole):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotAuthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
