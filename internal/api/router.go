package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/uptrace/bun"

	"github.com/agricert/farmer-certification/internal/api/handler"
	"github.com/agricert/farmer-certification/internal/api/middleware"
	"github.com/agricert/farmer-certification/internal/core/domain"
	"github.com/agricert/farmer-certification/internal/core/service"
	"github.com/agricert/farmer-certification/internal/infrastructure/config"
	"github.com/agricert/farmer-certification/internal/infrastructure/db/postgres"
	redisdb "github.com/agricert/farmer-certification/internal/infrastructure/db/redis"
	"github.com/agricert/farmer-certification/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *bun.DB, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowHeaders:     []string{echo.HeaderContentType, middleware.TokenHeader},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("farmcert"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	statusCache := redisdb.NewStatusCache(rdb)
	tokenService := service.NewTokenService(cfg.JWTSecret, time.Hour)
	authService := service.NewAuthService(userRepo, tokenService, logger.Get())
	farmerService := service.NewFarmerService(userRepo, statusCache, logger.Get())

	authHandler := handler.NewAuthHandler(authService)
	farmerHandler := handler.NewFarmerHandler(farmerService)

	authenticated := middleware.Auth(tokenService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	farmerOnly := middleware.RequireRole(domain.RoleFarmer)

	// --- User routes ---
	users := e.Group("/api/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("/farmers", farmerHandler.List, authenticated, adminOnly)
	users.PATCH("/farmers/:userId/status", farmerHandler.UpdateStatus, authenticated, adminOnly)
	users.GET("/farmers/:id/status", farmerHandler.StatusByID, authenticated)
	users.GET("/my-status", farmerHandler.MyStatus, authenticated, farmerOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
