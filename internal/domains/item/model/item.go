package model

import (
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	minNameLength = 5
	maxNameLength = 100
)

type Item struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *CreateItemRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

func (r CreateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.By(minNameLen),
			validation.RuneLength(0, maxNameLength).Error("name must be at most 100 characters"),
		),
	)
}

// minNameLen also covers the empty name
func minNameLen(value interface{}) error {
	name, _ := value.(string)
	if utf8.RuneCountInString(name) < minNameLength {
		return errors.New("Name must be at least 5 characters long.")
	}
	return nil
}

func (r CreateItemRequest) ToItem() *Item {
	return &Item{
		ID:          uuid.New(),
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   time.Now(),
	}
}

// ToHTTPStatus - items have no domain errors, anything reaching here is internal
func ToHTTPStatus(err error) int {
	return http.StatusInternalServerError
}
