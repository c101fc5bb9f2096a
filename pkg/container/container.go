package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/config"
	infraCache "bookclub-backend/internal/infrastructure/cache"
	"bookclub-backend/internal/infrastructure/database"
	"bookclub-backend/pkg/cache"
	"bookclub-backend/pkg/jwt"

	authorHandler "bookclub-backend/internal/domains/author/handler"
	authorRepo "bookclub-backend/internal/domains/author/repository"
	authorService "bookclub-backend/internal/domains/author/service"
	bookHandler "bookclub-backend/internal/domains/book/handler"
	bookRepo "bookclub-backend/internal/domains/book/repository"
	bookService "bookclub-backend/internal/domains/book/service"
	itemHandler "bookclub-backend/internal/domains/item/handler"
	itemRepo "bookclub-backend/internal/domains/item/repository"
	itemService "bookclub-backend/internal/domains/item/service"
	notificationHandler "bookclub-backend/internal/domains/notification/handler"
	notificationRepo "bookclub-backend/internal/domains/notification/repository"
	notificationService "bookclub-backend/internal/domains/notification/service"
	postHandler "bookclub-backend/internal/domains/post/handler"
	postRepo "bookclub-backend/internal/domains/post/repository"
	postService "bookclub-backend/internal/domains/post/service"
	userHandler "bookclub-backend/internal/domains/user/handler"
	userRepo "bookclub-backend/internal/domains/user/repository"
	userService "bookclub-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the API process.
// Built once at startup, in order: config → infrastructure → repositories → services → handlers.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Redis      *infraCache.RedisClient
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Blacklist  *jwt.Blacklist

	// Repositories
	UserRepo         userRepo.Repository
	AuthorRepo       authorRepo.RepositoryInterface
	BookRepo         bookRepo.RepositoryInterface
	PostRepo         postRepo.PostRepository
	NotificationRepo notificationRepo.NotificationRepository
	ItemRepo         itemRepo.ItemRepository

	// Services
	UserService         userService.Service
	AuthorService       authorService.ServiceInterface
	BookService         bookService.ServiceInterface
	PostService         postService.ServiceInterface
	NotificationService notificationService.NotificationService
	ItemService         itemService.Service

	// Handlers
	UserHandler         *userHandler.UserHandler
	AuthorHandler       *authorHandler.AuthorHandler
	BookHandler         *bookHandler.BookHandler
	PostHandler         *postHandler.PostHandler
	NotificationHandler *notificationHandler.NotificationHandler
	ItemHandler         *itemHandler.ItemHandler
}

// NewContainer builds the whole dependency graph.
// A failing database is fatal; Redis must answer a ping too since logout depends on it.
func NewContainer() (*Container, error) {
	log.Info().Msg("[CONTAINER] Initializing")

	c := &Container{}

	// STEP 1: CONFIGURATION
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("env", cfg.App.Environment).Msg("[CONTAINER] Config loaded")

	// STEP 2: DATABASE
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	// STEP 3: CACHE
	redisClient := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Redis = redisClient
	c.Cache = infraCache.NewRedisCache(redisClient.Client)

	// STEP 4: AUTH
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	c.Blacklist = jwt.NewBlacklist(c.Cache)

	// STEP 5..7: LAYERS
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("[CONTAINER] Initialized")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool
	ttl := c.Config.Cache.DetailTTL

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool, c.Cache, ttl)
	c.BookRepo = bookRepo.NewPostgresRepository(pool, c.Cache, ttl)
	c.PostRepo = postRepo.NewPostgresPostRepository(pool)
	c.NotificationRepo = notificationRepo.NewNotificationRepository(pool)
	c.ItemRepo = itemRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, c.Blacklist)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)
	c.PostService = postService.NewPostService(c.PostRepo)
	c.NotificationService = notificationService.NewNotificationService(c.NotificationRepo)
	c.ItemService = itemService.NewItemService(c.ItemRepo)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.NotificationHandler = notificationHandler.NewNotificationHandler(c.NotificationService)
	c.ItemHandler = itemHandler.NewItemHandler(c.ItemService)
}

// Cleanup releases pooled connections, called during graceful shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("[CONTAINER] Cleaning up")

	if c.DB != nil {
		c.DB.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("[CONTAINER] Failed to close Redis")
		}
	}
}
