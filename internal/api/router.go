package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/codecrafters-goa/CalmNest-CodeCrafters/docs"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/api/handler"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/api/middleware"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/service"
	mongodb "github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/infrastructure/db/mongo"
	redisdb "github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/infrastructure/db/redis"
)

// Auth endpoints share a strict budget: 5 requests per 15 minutes per IP,
// mirroring the abuse limits the public API has always enforced.
const (
	authRateLimit  = 5
	authRateWindow = 15 * time.Minute
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("calmnest"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	sessionRepo := mongodb.NewSessionRepository(db)
	contentRepo := mongodb.NewContentRepository(db)

	tokenService := service.NewTokenService(jwtSecret, service.TokenTTL)
	authService := service.NewAuthService(userRepo, service.NewBcryptHasher(), tokenService, log)
	userService := service.NewUserService(userRepo)
	sessionService := service.NewSessionService(sessionRepo, userRepo, log)
	contentService := service.NewContentService(contentRepo, log)
	analyticsService := service.NewAnalyticsService(userRepo, sessionRepo, contentRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	contentHandler := handler.NewContentHandler(contentService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	authMW := middleware.Auth(tokenService)
	adminMW := middleware.RequireRoles(domain.RoleAdmin)
	authLimiter := redisdb.NewFixedWindowLimiter(rdb, "auth", authRateLimit, authRateWindow)

	apiGroup := e.Group("/api")

	// --- Auth routes (rate limited, no token) ---
	authGroup := apiGroup.Group("/auth", middleware.RateLimit(authLimiter, log))
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// --- User profile ---
	apiGroup.GET("/user/profile", userHandler.Profile, authMW)
	apiGroup.PUT("/user/profile", userHandler.UpdateProfile, authMW)

	// --- Session accounting ---
	apiGroup.POST("/sessions", sessionHandler.Record, authMW)
	apiGroup.GET("/sessions/history", sessionHandler.History, authMW)

	// --- Content catalogues (listing is public, creation needs a token) ---
	apiGroup.GET("/audio", contentHandler.ListAudio)
	apiGroup.POST("/audio", contentHandler.CreateAudio, authMW)
	apiGroup.GET("/reading", contentHandler.ListReading)
	apiGroup.POST("/reading", contentHandler.CreateReading, authMW)
	apiGroup.GET("/yoga", contentHandler.ListYoga)
	apiGroup.POST("/yoga", contentHandler.CreateYoga, authMW)

	// --- Admin ---
	apiGroup.GET("/admin/analytics", analyticsHandler.Overview, authMW, adminMW)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	apiGroup.GET("/health", healthHandler.Liveness)
	apiGroup.GET("/health/ready", readinessHandler.Readiness)

	// --- Ops surfaces ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
