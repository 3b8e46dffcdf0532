package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nexline/accounts-api/internal/api/handler"
	"github.com/nexline/accounts-api/internal/api/middleware"
	"github.com/nexline/accounts-api/internal/core/domain"
	"github.com/nexline/accounts-api/internal/core/ports"
	"github.com/nexline/accounts-api/internal/core/service"
	mongodb "github.com/nexline/accounts-api/internal/infrastructure/db/mongo"
	redisdb "github.com/nexline/accounts-api/internal/infrastructure/db/redis"
	"github.com/nexline/accounts-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Signup and login are open; every other route sits behind the bearer-token
// middleware and, where noted, a role gate.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, notifications ports.NotificationQueue, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType},
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, roleRepo, notifications)
	userService := service.NewUserService(userRepo)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	authHandler := handler.NewAuthHandler(authService, tokens, limiter)
	userHandler := handler.NewUserHandler(userService)

	// The filter runs on every request; it authenticates when it can and
	// otherwise lets the request continue unauthenticated.
	e.Use(middleware.Authenticate(tokens, userRepo, log))

	// --- Auth routes (no token required) ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	users := e.Group("/users", middleware.RequireAuth())
	users.GET("", userHandler.List, middleware.RequireRole(domain.RoleAdmin))
	users.GET("/me", userHandler.Me)
	users.PUT("/me", userHandler.UpdateProfile)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
