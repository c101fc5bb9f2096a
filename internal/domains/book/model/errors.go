package model

import (
	"errors"
	"net/http"
)

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrDuplicateISBN  = errors.New("book with this isbn already exists.")
	ErrAuthorNotFound = errors.New("Invalid pk - author does not exist.")
	ErrInvalidFilter  = errors.New("invalid filter value")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrDuplicateISBN):
		return "DUPLICATE_ISBN"
	case errors.Is(err, ErrAuthorNotFound):
		return "INVALID_AUTHOR"
	case errors.Is(err, ErrInvalidFilter):
		return "BAD_REQUEST"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateISBN), errors.Is(err, ErrAuthorNotFound), errors.Is(err, ErrInvalidFilter):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
