package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookclub-backend/internal/domains/user/model"
	"bookclub-backend/internal/shared"
	"bookclub-backend/internal/shared/middleware"
	"bookclub-backend/pkg/jwt"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) result(args mock.Arguments) (interface{}, error) {
	return args.Get(0), args.Error(1)
}

func (m *mockService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	v, err := m.result(m.Called(ctx, req))
	if v == nil {
		return nil, err
	}
	return v.(*model.AuthResponse), err
}

func (m *mockService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	v, err := m.result(m.Called(ctx, req))
	if v == nil {
		return nil, err
	}
	return v.(*model.AuthResponse), err
}

func (m *mockService) Logout(ctx context.Context, claims *jwt.Claims) error {
	return m.Called(ctx, claims).Error(0)
}

func (m *mockService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.ProfileResponse, error) {
	v, err := m.result(m.Called(ctx, userID))
	if v == nil {
		return nil, err
	}
	return v.(*model.ProfileResponse), err
}

func (m *mockService) UpdateProfile(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (*model.ProfileResponse, error) {
	v, err := m.result(m.Called(ctx, userID, req))
	if v == nil {
		return nil, err
	}
	return v.(*model.ProfileResponse), err
}

func (m *mockService) GetPublicProfile(ctx context.Context, username string, viewerID *uuid.UUID) (*model.PublicProfileResponse, error) {
	v, err := m.result(m.Called(ctx, username, viewerID))
	if v == nil {
		return nil, err
	}
	return v.(*model.PublicProfileResponse), err
}

func (m *mockService) Follow(ctx context.Context, actorID uuid.UUID, username string) (*model.MessageResponse, error) {
	v, err := m.result(m.Called(ctx, actorID, username))
	if v == nil {
		return nil, err
	}
	return v.(*model.MessageResponse), err
}

func (m *mockService) Unfollow(ctx context.Context, actorID uuid.UUID, username string) (*model.MessageResponse, error) {
	v, err := m.result(m.Called(ctx, actorID, username))
	if v == nil {
		return nil, err
	}
	return v.(*model.MessageResponse), err
}

func (m *mockService) ListFollowers(ctx context.Context, username string) ([]shared.UserBasicInfo, error) {
	v, err := m.result(m.Called(ctx, username))
	if v == nil {
		return nil, err
	}
	return v.([]shared.UserBasicInfo), err
}

func (m *mockService) ListFollowing(ctx context.Context, username string) ([]shared.UserBasicInfo, error) {
	v, err := m.result(m.Called(ctx, username))
	if v == nil {
		return nil, err
	}
	return v.([]shared.UserBasicInfo), err
}

func (m *mockService) GetRole(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *mockService) IsStaff(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockService) Dashboard(ctx context.Context, userID uuid.UUID, area model.Role) (*model.DashboardResponse, error) {
	v, err := m.result(m.Called(ctx, userID, area))
	if v == nil {
		return nil, err
	}
	return v.(*model.DashboardResponse), err
}

func (m *mockService) UpdateRole(ctx context.Context, userID uuid.UUID, req model.UpdateRoleRequest) (*model.UserResponse, error) {
	v, err := m.result(m.Called(ctx, userID, req))
	if v == nil {
		return nil, err
	}
	return v.(*model.UserResponse), err
}

func setupRouter(h *UserHandler, userID *uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != nil {
			c.Set(middleware.ContextUserID, *userID)
			c.Set(middleware.ContextClaims, &jwt.Claims{UserID: userID.String()})
		}
		c.Next()
	})
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/profile", h.GetProfile)
	r.PUT("/profile", h.UpdateProfile)
	r.GET("/users/:username", h.GetPublicProfile)
	r.GET("/users/:username/followers", h.ListFollowers)
	r.POST("/follow/:username", h.Follow)
	r.POST("/unfollow/:username", h.Unfollow)
	r.GET("/dashboard/member", h.Dashboard(model.RoleMember))
	r.PUT("/admin/users/:id/role", h.UpdateUserRole)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_Created(t *testing.T) {
	svc := new(mockService)
	svc.On("Register", mock.Anything, model.RegisterRequest{Username: "alice", Email: "a@example.com", Password: "s3cretpass"}).
		Return(&model.AuthResponse{Token: "tok", User: model.UserResponse{Username: "alice"}}, nil)

	w := serve(setupRouter(NewUserHandler(svc), nil), http.MethodPost, "/register",
		`{"username":"alice","email":"a@example.com","password":"s3cretpass"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"tok"`)
}

func TestRegister_ValidationDetails(t *testing.T) {
	svc := new(mockService)
	svc.On("Register", mock.Anything, mock.Anything).
		Return(nil, validation.Errors{"password": validation.NewError("x", "password must be 8-128 characters")})

	w := serve(setupRouter(NewUserHandler(svc), nil), http.MethodPost, "/register", `{"username":"alice"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, w.Body.String(), "password must be 8-128 characters")
}

func TestRegister_MalformedJSON(t *testing.T) {
	w := serve(setupRouter(NewUserHandler(new(mockService)), nil), http.MethodPost, "/register", `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := new(mockService)
	svc.On("Login", mock.Anything, mock.Anything).Return(nil, model.ErrInvalidCredentials)

	w := serve(setupRouter(NewUserHandler(svc), nil), http.MethodPost, "/login", `{"username":"alice","password":"bad"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLogout(t *testing.T) {
	userID := uuid.New()
	svc := new(mockService)
	svc.On("Logout", mock.Anything, mock.MatchedBy(func(c *jwt.Claims) bool { return c.UserID == userID.String() })).Return(nil)

	w := serve(setupRouter(NewUserHandler(svc), &userID), http.MethodPost, "/logout", "")

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestProfile_RequiresAuth(t *testing.T) {
	w := serve(setupRouter(NewUserHandler(new(mockService)), nil), http.MethodGet, "/profile", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFollow(t *testing.T) {
	userID := uuid.New()
	svc := new(mockService)
	svc.On("Follow", mock.Anything, userID, "bob").Return(&model.MessageResponse{Detail: "You are now following bob"}, nil)
	svc.On("Follow", mock.Anything, userID, "alice").Return(nil, model.ErrCannotFollowSelf)
	svc.On("Follow", mock.Anything, userID, "ghost").Return(nil, model.ErrUserNotFound)
	r := setupRouter(NewUserHandler(svc), &userID)

	w := serve(r, http.MethodPost, "/follow/bob", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "You are now following bob")

	w = serve(r, http.MethodPost, "/follow/alice", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CANNOT_FOLLOW_SELF")

	w = serve(r, http.MethodPost, "/follow/ghost", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFollow_Anonymous(t *testing.T) {
	w := serve(setupRouter(NewUserHandler(new(mockService)), nil), http.MethodPost, "/follow/bob", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListFollowers(t *testing.T) {
	svc := new(mockService)
	svc.On("ListFollowers", mock.Anything, "bob").Return([]shared.UserBasicInfo{{ID: uuid.New(), Username: "alice"}}, nil)

	w := serve(setupRouter(NewUserHandler(svc), nil), http.MethodGet, "/users/bob/followers", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestGetPublicProfile_PassesViewer(t *testing.T) {
	viewer := uuid.New()
	svc := new(mockService)
	svc.On("GetPublicProfile", mock.Anything, "bob", &viewer).Return(&model.PublicProfileResponse{Username: "bob"}, nil)

	w := serve(setupRouter(NewUserHandler(svc), &viewer), http.MethodGet, "/users/bob", "")

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestDashboard(t *testing.T) {
	userID := uuid.New()
	svc := new(mockService)
	svc.On("Dashboard", mock.Anything, userID, model.RoleMember).
		Return(&model.DashboardResponse{Dashboard: "member", Message: "Welcome to the member dashboard, alice."}, nil)

	w := serve(setupRouter(NewUserHandler(svc), &userID), http.MethodGet, "/dashboard/member", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to the member dashboard")
}

func TestUpdateUserRole_InvalidID(t *testing.T) {
	userID := uuid.New()
	w := serve(setupRouter(NewUserHandler(new(mockService)), &userID), http.MethodPut, "/admin/users/abc/role", `{"role":"admin"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
