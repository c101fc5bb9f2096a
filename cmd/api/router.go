package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	userModel "bookclub-backend/internal/domains/user/model"
	"bookclub-backend/internal/shared/middleware"
	"bookclub-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// nil trusts no proxy, ClientIP() is then the TCP peer
	if err := router.SetTrustedProxies(c.Config.App.TrustedProxies); err != nil {
		log.Warn().Err(err).Msg("Invalid APP_TRUSTED_PROXIES, trusting no proxy")
		_ = router.SetTrustedProxies(nil)
	}

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIPMiddleware(),
		middleware.Logger(),
		middleware.CORS(),
	)

	auth := middleware.AuthMiddleware(c.JWTManager, c.Blacklist)
	optionalAuth := middleware.OptionalAuth(c.JWTManager, c.Blacklist)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAccountRoutes(v1, c, auth, optionalAuth)
		setupDashboardRoutes(v1, c, auth)
		setupAuthorRoutes(v1, c, auth)
		setupBookRoutes(v1, c, auth)
		setupPostRoutes(v1, c, auth)
		setupNotificationRoutes(v1, c, auth)
		setupItemRoutes(v1, c, auth)
	}

	return router
}

// ========================================
// ACCOUNT ROUTES
// ========================================
func setupAccountRoutes(v1 *gin.RouterGroup, c *container.Container, auth, optionalAuth gin.HandlerFunc) {
	h := c.UserHandler

	v1.POST("/register", h.Register)
	v1.POST("/login", h.Login)
	v1.POST("/logout", auth, h.Logout)

	v1.GET("/profile", auth, h.GetProfile)
	v1.PUT("/profile", auth, h.UpdateProfile)
	v1.PATCH("/profile", auth, h.UpdateProfile)

	users := v1.Group("/users")
	{
		users.GET("/:username", optionalAuth, h.GetPublicProfile)
		users.GET("/:username/followers", h.ListFollowers)
		users.GET("/:username/following", h.ListFollowing)
	}

	v1.POST("/follow/:username", auth, h.Follow)
	v1.POST("/unfollow/:username", auth, h.Unfollow)

	admin := v1.Group("/admin", auth, middleware.StaffOnly(c.UserService))
	{
		admin.PUT("/users/:id/role", h.UpdateUserRole)
	}
}

// ========================================
// LIBRARY DASHBOARDS
// ========================================
func setupDashboardRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	h := c.UserHandler
	dashboard := v1.Group("/dashboard", auth)
	{
		dashboard.GET("/admin",
			middleware.RequireRole(c.UserService, string(userModel.RoleAdmin)),
			h.Dashboard(userModel.RoleAdmin))
		dashboard.GET("/librarian",
			middleware.RequireRole(c.UserService, string(userModel.RoleLibrarian)),
			h.Dashboard(userModel.RoleLibrarian))
		dashboard.GET("/member",
			middleware.RequireRole(c.UserService, string(userModel.RoleMember)),
			h.Dashboard(userModel.RoleMember))
	}
}

// ========================================
// CATALOG ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	h := c.AuthorHandler
	authors := v1.Group("/authors")
	{
		authors.GET("", h.List)
		authors.GET("/:id", h.GetByID)
		authors.POST("", auth, h.Create)
		authors.PUT("/:id", auth, h.Update)
		authors.PATCH("/:id", auth, h.Update)
		authors.DELETE("/:id", auth, middleware.StaffOnly(c.UserService), h.Delete)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	h := c.BookHandler
	staff := middleware.StaffOnly(c.UserService)

	books := v1.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBook)

		books.POST("", auth, h.CreateBook)
		books.POST("/create", auth, h.CreateBook)

		books.PUT("/:id", auth, h.UpdateBook)
		books.PATCH("/:id", auth, h.UpdateBook)
		books.PUT("/:id/update", auth, h.UpdateBook)
		books.PATCH("/:id/update", auth, h.UpdateBook)
		books.PUT("/update/:id", auth, h.UpdateBook)
		books.PATCH("/update/:id", auth, h.UpdateBook)

		books.DELETE("/:id", auth, staff, h.DeleteBook)
		books.DELETE("/:id/delete", auth, staff, h.DeleteBook)
		books.DELETE("/delete/:id", auth, staff, h.DeleteBook)
	}
}

// ========================================
// SOCIAL ROUTES
// ========================================
func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	h := c.PostHandler

	posts := v1.Group("/posts")
	{
		posts.GET("", h.ListPosts)
		posts.GET("/:id", h.GetPost)
		posts.POST("", auth, h.CreatePost)
		posts.PUT("/:id", auth, h.UpdatePost)
		posts.PATCH("/:id", auth, h.UpdatePost)
		posts.DELETE("/:id", auth, h.DeletePost)

		posts.POST("/:id/like", auth, h.LikePost)
		posts.POST("/:id/unlike", auth, h.UnlikePost)

		posts.GET("/:id/comments", h.ListPostComments)
		posts.POST("/:id/comments", auth, h.CreatePostComment)
	}

	comments := v1.Group("/comments")
	{
		comments.GET("", h.ListComments)
		comments.GET("/:id", h.GetComment)
		comments.POST("", auth, h.CreateComment)
		comments.PUT("/:id", auth, h.UpdateComment)
		comments.PATCH("/:id", auth, h.UpdateComment)
		comments.DELETE("/:id", auth, h.DeleteComment)
	}

	v1.GET("/feed", auth, h.Feed)
}

func setupNotificationRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	h := c.NotificationHandler
	notifications := v1.Group("/notifications", auth)
	{
		notifications.GET("", h.List)
		notifications.POST("/read-all", h.MarkAllRead)
		notifications.POST("/:id/read", h.MarkRead)
	}
}

func setupItemRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	v1.GET("/items", c.ItemHandler.List)
	v1.POST("/items", auth, c.ItemHandler.Create)
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "ok"
		dbStatus := "ok"
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = "error: " + err.Error()
			status = "degraded"
		}

		redisStatus := "ok"
		if err := appCtx.Redis.HealthCheck(ctx); err != nil {
			redisStatus = "error: " + err.Error()
			status = "degraded"
		}

		health := gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		}
		if stats, err := appCtx.DB.Stats(); err == nil {
			health["pool"] = stats
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}
		c.JSON(statusCode, health)
	}
}
