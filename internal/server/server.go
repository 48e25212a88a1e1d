// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	_ "motoisle/docs" // swagger docs
	"motoisle/internal/cache"
	"motoisle/internal/config"
	"motoisle/internal/database"
	"motoisle/internal/featureflags"
	"motoisle/internal/middleware"
	"motoisle/internal/models"
	"motoisle/internal/repository"
	"motoisle/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	featureFlags   *featureflags.Manager

	userRepo    repository.UserRepository
	motoRepo    repository.MotorcycleRepository
	shopRepo    repository.ShopRepository
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository
	blogRepo    repository.BlogRepository
	favRepo     repository.FavoriteRepository

	userService     *service.UserService
	catalogService  *service.CatalogService
	shopService     *service.ShopService
	bookingService  *service.BookingService
	reviewService   *service.ReviewService
	blogService     *service.BlogService
	favoriteService *service.FavoriteService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and
// optionally performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("motoisle-api"),
		featureFlags:   featureflags.NewManager(cfg.FeatureFlags),
		userRepo:       repository.NewUserRepository(db),
		motoRepo:       repository.NewMotorcycleRepository(db),
		shopRepo:       repository.NewShopRepository(db),
		bookingRepo:    repository.NewBookingRepository(db),
		reviewRepo:     repository.NewReviewRepository(db),
		blogRepo:       repository.NewBlogRepository(db),
		favRepo:        repository.NewFavoriteRepository(db),
	}

	server.userService = service.NewUserService(server.userRepo)
	server.catalogService = service.NewCatalogService(server.motoRepo, server.shopRepo)
	server.shopService = service.NewShopService(server.shopRepo, server.motoRepo)
	server.bookingService = service.NewBookingService(server.bookingRepo, server.motoRepo)
	server.reviewService = service.NewReviewService(server.reviewRepo, server.motoRepo)
	server.blogService = service.NewBlogService(server.blogRepo)
	server.favoriteService = service.NewFavoriteService(server.favRepo, server.motoRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Distributed tracing
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)
	api.Get("/", s.HealthCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Motoisle Backend Metrics Dashboard",
	}))

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Get("/me", s.AuthRequired(), s.Me)
	auth.Post("/logout", s.AuthRequired(), s.Logout)

	// Public catalog routes
	motorcycles := api.Group("/motorcycles")
	motorcycles.Get("/", s.GetMotorcycles)
	motorcycles.Get("/featured", s.GetFeaturedMotorcycles)
	motorcycles.Get("/search", middleware.RateLimit(
		s.redis, 10, time.Minute, "search"), s.SearchMotorcycles)
	// Specific /:id/:resource routes before the generic /:id route
	motorcycles.Get("/:id/reviews", s.GetReviews)
	motorcycles.Get("/:id/quote", s.QuoteBooking)
	motorcycles.Get("/:id", s.GetMotorcycle)

	// Public shop routes
	shops := api.Group("/shops")
	shops.Get("/", s.GetShops)
	shops.Get("/featured", s.GetFeaturedShops)
	shops.Get("/:id/motorcycles", s.GetShopMotorcycles)
	shops.Get("/:id", s.GetShop)

	// Public blog routes
	blog := api.Group("/blog")
	blog.Get("/", s.GetBlogPosts)
	blog.Get("/featured", s.GetFeaturedBlogPosts)
	blog.Get("/search", middleware.RateLimit(
		s.redis, 10, time.Minute, "blog_search"), s.SearchBlogPosts)
	blog.Get("/:slug", s.GetBlogPost)

	// Reviews (creating one requires no account, matching the storefront)
	reviews := api.Group("/reviews")
	reviews.Post("/", middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "create_review"), s.CreateReview)
	reviews.Post("/:id/helpful", s.MarkReviewHelpful)

	// Protected routes
	protected := api.Group("", s.AuthRequired())

	// Booking routes
	bookings := protected.Group("/bookings")
	bookings.Post("/", middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "create_booking"), s.CreateBooking)
	bookings.Get("/", s.GetMyBookings)
	bookings.Get("/code/:code", s.GetBookingByCode)
	bookings.Post("/:id/cancel", s.CancelBooking)
	bookings.Get("/:id", s.GetBooking)

	// Favorite routes
	favorites := protected.Group("/favorites")
	favorites.Get("/", s.GetFavorites)
	favorites.Post("/:id/toggle", s.ToggleFavorite)
	favorites.Get("/:id", s.CheckFavorite)
	favorites.Post("/:id", s.AddFavorite)
	favorites.Delete("/:id", s.RemoveFavorite)

	// Shop owner routes
	owner := protected.Group("/owner", s.RequireRole(models.RoleShopOwner, models.RoleAdmin))
	owner.Post("/shops", s.CreateShop)
	owner.Post("/shops/:id/motorcycles", s.CreateMotorcycle)

	// Role dashboard
	protected.Get("/dashboard", s.GetDashboard)

	// Admin routes
	admin := protected.Group("/admin", s.RequireRole(models.RoleAdmin))
	admin.Get("/feature-flags", s.GetFeatureFlags)
	adminShops := admin.Group("/shops")
	adminShops.Get("/", s.GetModerationQueue)
	adminShops.Post("/:id/approve", s.ApproveShop)
	adminShops.Post("/:id/reject", s.RejectShop)
	adminShops.Post("/:id/verify", s.VerifyShop)
	adminShops.Post("/:id/suspend", s.SuspendShop)
	adminShops.Post("/:id/reinstate", s.ReinstateShop)
	adminBlog := admin.Group("/blog")
	adminBlog.Post("/", s.CreateBlogPost)
	adminBlog.Put("/:slug", s.UpdateBlogPost)
	adminBlog.Delete("/:slug", s.DeleteBlogPost)
}

// HealthCheck is a legacy/simple alias for ReadinessCheck
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return s.ReadinessCheck(c)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The API degrades gracefully without Redis; readiness only reports it.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "Motoisle",
		"version": "1.0.0",
		"status":  overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// RequireRole returns middleware that rejects users whose role is not in the
// allowed set with 403. Must be placed after AuthRequired so that the role is
// available in locals.
func (s *Server) RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(models.Role)
		if !ok {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewUnauthorizedError("Insufficient permissions"))
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Insufficient permissions"))
	}
}

// AuthRequired returns the authentication middleware
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token audience"))
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid subject claim"))
		}
		userID, err := strconv.ParseUint(sub, 10, 32)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid user ID in token"))
		}

		role := models.Role("")
		if raw, exists := claims["role"].(string); exists {
			role = models.Role(raw)
		}
		if !role.Valid() {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid role claim"))
		}

		// Check JTI for revocation
		if jti, exists := claims["jti"].(string); exists && jti != "" {
			if s.redis != nil {
				isBlacklisted, err := s.redis.Exists(c.Context(), "blacklist:"+jti).Result()
				if err == nil && isBlacklisted > 0 {
					return models.RespondWithError(c, fiber.StatusUnauthorized,
						models.NewUnauthorizedError("Token has been revoked"))
				}
			}
			c.Locals("jti", jti)
		}
		if exp, exists := claims["exp"].(float64); exists {
			c.Locals("exp", int64(exp))
		}

		c.Locals("userID", uint(userID))
		c.Locals("role", role)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, uint(userID))
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Motoisle Rental API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
