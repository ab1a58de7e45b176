package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/codewithemma/account-microservice/internal/api/handler"
	"github.com/codewithemma/account-microservice/internal/api/middleware"
	"github.com/codewithemma/account-microservice/internal/core/domain"
	"github.com/codewithemma/account-microservice/internal/core/ports"
	"github.com/codewithemma/account-microservice/internal/core/service"
	"github.com/codewithemma/account-microservice/internal/infrastructure/config"
	"github.com/codewithemma/account-microservice/internal/infrastructure/db/mysql"
	"github.com/codewithemma/account-microservice/internal/security"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, cfg *config.Config, dispatcher ports.NotificationDispatcher, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("account"))

	// --- Dependencies ---
	hasher := security.NewHasher(cfg.HashSecret, cfg.HashIterations)
	issuer := security.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	accountRepo := mysql.NewAccountRepository(db)
	accountService := service.NewAccountService(accountRepo, hasher, dispatcher, log)
	authService := service.NewAuthService(accountRepo, hasher, issuer, log)

	accountHandler := handler.NewAccountHandler(accountService)
	authHandler := handler.NewAuthHandler(authService)

	// --- Business routes ---
	v1 := e.Group("/api/v1")
	v1.POST("/accounts", accountHandler.Create)
	v1.PUT("/accounts/:id", accountHandler.Update)
	v1.GET("/accounts/:email", accountHandler.Get)
	v1.POST("/auth", authHandler.Login)

	// Admin mirror of the lookup, gated by token and role.
	admin := v1.Group("/admin", middleware.Auth(issuer), middleware.RBAC(domain.RoleAdmin))
	admin.GET("/accounts/:email", accountHandler.Get)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
