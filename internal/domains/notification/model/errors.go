package model

import (
	"errors"
	"net/http"
)

var ErrNotificationNotFound = errors.New("notification not found")

func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrNotificationNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func ToErrorCode(err error) string {
	if errors.Is(err, ErrNotificationNotFound) {
		return "NOT_FOUND"
	}
	return "INTERNAL_ERROR"
}
