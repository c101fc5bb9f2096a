package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLibrarian Role = "librarian"
	RoleMember    Role = "member"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLibrarian, RoleMember:
		return true
	}
	return false
}

// User - Entity (database model)
type User struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	IsStaff      bool       `json:"is_staff"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Profile is created together with its User and never on its own
type Profile struct {
	UserID          uuid.UUID  `json:"user_id"`
	Role            Role       `json:"role"`
	Bio             string     `json:"bio"`
	PhoneNumber     string     `json:"phone_number"`
	Location        string     `json:"location"`
	Website         string     `json:"website"`
	DateOfBirth     *time.Time `json:"date_of_birth,omitempty"`
	ProfilePhotoURL *string    `json:"profile_photo_url,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewProfile returns the default profile of a freshly registered user
func NewProfile(userID uuid.UUID, now time.Time) *Profile {
	return &Profile{
		UserID:    userID,
		Role:      RoleMember,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type FollowCounts struct {
	Followers int `json:"followers_count"`
	Following int `json:"following_count"`
}
