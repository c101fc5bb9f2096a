package model

import (
	"errors"
	"net/http"
)

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrInvalidID      = errors.New("invalid author id")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound), errors.Is(err, ErrInvalidID):
		return "NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound), errors.Is(err, ErrInvalidID):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
