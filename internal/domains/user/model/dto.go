package model

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"bookclub-backend/internal/shared"
)

const dateLayout = "2006-01-02"

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// ========================================
// AUTH DTOs
// ========================================

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 150).Error("username must be 3-150 characters"),
			validation.Match(usernamePattern).Error("username may contain only letters, digits and @/./+/-/_"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("invalid email format"),
			validation.Length(3, 254),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
	)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	User      UserResponse `json:"user"`
}

// ========================================
// PROFILE DTOs
// ========================================

// UpdateProfileRequest - partial update, nil fields are left untouched
type UpdateProfileRequest struct {
	Email           *string `json:"email"`
	Bio             *string `json:"bio"`
	PhoneNumber     *string `json:"phone_number"`
	Location        *string `json:"location"`
	Website         *string `json:"website"`
	DateOfBirth     *string `json:"date_of_birth"` // YYYY-MM-DD, "" clears
	ProfilePhotoURL *string `json:"profile_photo_url"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.NilOrNotEmpty.Error("email cannot be blank"), is.EmailFormat.Error("invalid email format")),
		validation.Field(&r.PhoneNumber, validation.Length(0, 20)),
		validation.Field(&r.Location, validation.Length(0, 100)),
		validation.Field(&r.Website, validation.Length(0, 200), is.URL.Error("website must be a valid URL")),
		validation.Field(&r.DateOfBirth, validation.Date(dateLayout).Error("date_of_birth must be YYYY-MM-DD")),
		validation.Field(&r.ProfilePhotoURL, is.URL.Error("profile_photo_url must be a valid URL")),
	)
}

// Apply copies the supplied fields onto p. Validate must have passed.
func (r UpdateProfileRequest) Apply(p *Profile) {
	if r.Bio != nil {
		p.Bio = *r.Bio
	}
	if r.PhoneNumber != nil {
		p.PhoneNumber = *r.PhoneNumber
	}
	if r.Location != nil {
		p.Location = *r.Location
	}
	if r.Website != nil {
		p.Website = *r.Website
	}
	if r.DateOfBirth != nil {
		if *r.DateOfBirth == "" {
			p.DateOfBirth = nil
		} else if d, err := time.Parse(dateLayout, *r.DateOfBirth); err == nil {
			p.DateOfBirth = &d
		}
	}
	if r.ProfilePhotoURL != nil {
		if *r.ProfilePhotoURL == "" {
			p.ProfilePhotoURL = nil
		} else {
			url := *r.ProfilePhotoURL
			p.ProfilePhotoURL = &url
		}
	}
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

func (r UpdateRoleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role,
			validation.Required.Error("role is required"),
			validation.In(string(RoleAdmin), string(RoleLibrarian), string(RoleMember)).Error("role must be admin, librarian or member"),
		),
	)
}

// ========================================
// RESPONSE DTOs
// ========================================

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	IsStaff  bool      `json:"is_staff"`
	Role     Role      `json:"role"`
}

func (u *User) ToResponse(role Role) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsStaff:  u.IsStaff,
		Role:     role,
	}
}

func (u *User) ToBasicInfo() shared.UserBasicInfo {
	return shared.UserBasicInfo{ID: u.ID, Username: u.Username}
}

type ProfileResponse struct {
	UserResponse
	Bio             string    `json:"bio"`
	PhoneNumber     string    `json:"phone_number"`
	Location        string    `json:"location"`
	Website         string    `json:"website"`
	DateOfBirth     *string   `json:"date_of_birth"`
	ProfilePhotoURL *string   `json:"profile_photo_url"`
	DateJoined      time.Time `json:"date_joined"`
	FollowCounts
}

func NewProfileResponse(u *User, p *Profile, counts FollowCounts) *ProfileResponse {
	resp := &ProfileResponse{
		UserResponse:    u.ToResponse(p.Role),
		Bio:             p.Bio,
		PhoneNumber:     p.PhoneNumber,
		Location:        p.Location,
		Website:         p.Website,
		ProfilePhotoURL: p.ProfilePhotoURL,
		DateJoined:      u.CreatedAt,
		FollowCounts:    counts,
	}
	if p.DateOfBirth != nil {
		d := p.DateOfBirth.Format(dateLayout)
		resp.DateOfBirth = &d
	}
	return resp
}

// PublicProfileResponse hides contact fields
type PublicProfileResponse struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	Bio             string    `json:"bio"`
	Location        string    `json:"location"`
	Website         string    `json:"website"`
	ProfilePhotoURL *string   `json:"profile_photo_url"`
	DateJoined      time.Time `json:"date_joined"`
	FollowCounts
	IsFollowing *bool `json:"is_following,omitempty"` // only for authenticated viewers
}

func NewPublicProfileResponse(u *User, p *Profile, counts FollowCounts) *PublicProfileResponse {
	return &PublicProfileResponse{
		ID:              u.ID,
		Username:        u.Username,
		Bio:             p.Bio,
		Location:        p.Location,
		Website:         p.Website,
		ProfilePhotoURL: p.ProfilePhotoURL,
		DateJoined:      u.CreatedAt,
		FollowCounts:    counts,
	}
}

type MessageResponse struct {
	Detail string `json:"detail"`
}

type DashboardResponse struct {
	Dashboard string `json:"dashboard"`
	Message   string `json:"message"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
}
