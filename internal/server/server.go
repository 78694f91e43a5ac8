// Package server contains the HTTP layer: the Fiber app, its
// middleware chain, route registration and the request handlers that
// adapt the service layer to the wire.
package server

import (
	"context"
	"log/slog"
	"time"

	"devconnect/internal/auth"
	"devconnect/internal/cache"
	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides the HTTP handlers.
type Server struct {
	config   *config.Config
	db       *gorm.DB
	redis    *redis.Client
	tokens   auth.TokenIssuer
	identity *service.IdentityService
	graph    *service.GraphService
	projects *service.ProjectService
	chat     *service.ChatService
}

// NewServer connects to the database and cache and wires up the
// repositories and services.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	if !cfg.IsTest() {
		redisClient = cache.NewClient(cfg.RedisURL)
	}

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	chatRepo := repository.NewChatRepository(db)

	hasher := auth.NewBcryptHasher()
	tokens := auth.NewJWTIssuer(cfg.JWTSecret)

	return &Server{
		config:   cfg,
		db:       db,
		redis:    redisClient,
		tokens:   tokens,
		identity: service.NewIdentityService(userRepo, hasher, tokens),
		graph:    service.NewGraphService(followRepo, userRepo),
		projects: service.NewProjectService(projectRepo, userRepo),
		chat:     service.NewChatService(chatRepo, userRepo),
	}, nil
}

// DB exposes the underlying gorm handle for seeding and tests.
func (s *Server) DB() *gorm.DB {
	return s.db
}

// NewApp builds a Fiber app with the full middleware chain and routes.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "DevConnect API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
			}
			middleware.Logger.Error("unhandled error", slog.String("error", err.Error()))
			return models.RespondWithError(c, models.NewUnavailableError(err))
		},
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(requestid.New())
	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	if !s.config.IsTest() {
		prometheus := fiberprometheus.New("devconnect")
		prometheus.RegisterAt(app, "/metrics")
		app.Use(prometheus.Middleware)
	}

	// Coarse per-IP limit in front of the Redis-backed per-route limits.
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
		Next: func(c *fiber.Ctx) bool {
			return s.config.IsTest()
		},
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.AllowedOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes registers all API routes.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", s.HealthCheck)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", middleware.RateLimit(s.redis, 3, 10*time.Minute, "register"), s.Register)
	authGroup.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)
	authGroup.Get("/me", middleware.AuthRequired(s.tokens), s.GetCurrentUser)

	users := api.Group("/users")
	users.Get("/", s.SearchUsers)
	users.Put("/:id", middleware.AuthRequired(s.tokens), s.UpdateUser)
	users.Post("/:id/follow", middleware.AuthRequired(s.tokens),
		middleware.RateLimit(s.redis, 30, time.Minute, "follow"), s.ToggleFollow)
	// Catch-all username route goes last so it cannot shadow the above.
	users.Get("/:username", s.GetUserByUsername)

	projects := api.Group("/projects")
	projects.Get("/", s.ListProjects)
	projects.Post("/", middleware.AuthRequired(s.tokens),
		middleware.RateLimit(s.redis, 5, 5*time.Minute, "create_project"), s.CreateProject)
	projects.Post("/:id/star", middleware.AuthRequired(s.tokens), s.ToggleStar)
	projects.Get("/:id", s.GetProject)

	conversations := api.Group("/conversations", middleware.AuthRequired(s.tokens))
	conversations.Get("/", s.ListConversations)
	conversations.Post("/", s.CreateConversation)
	conversations.Get("/:id/messages", s.ListMessages)
	conversations.Post("/:id/messages",
		middleware.RateLimit(s.redis, 15, time.Minute, "send_message"), s.SendMessage)
}

// HealthCheck reports liveness of the API and its backing stores.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil || sqlDB.PingContext(ctx) != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "disabled"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overall := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overall = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"timestamp": time.Now().UTC(),
	})
}

// Start runs the HTTP listener. It blocks until the listener stops.
func (s *Server) Start() error {
	app := s.NewApp()
	middleware.Logger.Info("Server starting", slog.String("port", s.config.Port))
	return app.Listen(":" + s.config.Port)
}

// Shutdown closes the database and cache connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing database", slog.String("error", cerr.Error()))
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", slog.String("error", rerr.Error()))
		}
	}

	middleware.Logger.Info("Server shutdown complete")
	return nil
}
