package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ourstore/storefront-api/internal/api/handler"
	"github.com/ourstore/storefront-api/internal/api/middleware"
	"github.com/ourstore/storefront-api/internal/core/ports"
	"github.com/ourstore/storefront-api/internal/core/service"
	"github.com/ourstore/storefront-api/internal/infrastructure/catalog"
	"github.com/ourstore/storefront-api/internal/infrastructure/config"
	"github.com/ourstore/storefront-api/internal/infrastructure/memory"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case catalog responses are not cached.
func NewRouter(cfg *config.Config, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	authService, err := service.NewAuthService(cfg.Admin.Username, cfg.Admin.Password, cfg.JWTSecret, 24*time.Hour)
	if err != nil {
		return nil, err
	}
	gate := service.NewGate()

	reviewRepo := memory.NewReviewRepository()
	reviewService := service.NewReviewService(reviewRepo, log)

	var catalogClient ports.CatalogClient = catalog.NewClient(catalog.Config{
		BaseURL: cfg.Catalog.BaseURL,
		Timeout: cfg.Catalog.Timeout,
	})
	if rdb != nil {
		catalogClient = catalog.NewCache(catalogClient, rdb, cfg.Catalog.CacheTTL, log)
	}

	authHandler := handler.NewAuthHandler(authService, cfg.Production())
	reviewHandler := handler.NewReviewHandler(reviewService)
	productHandler := handler.NewProductHandler(catalogClient)
	adminHandler := handler.NewAdminHandler(reviewService)

	// The gate runs on every request, ahead of the routes it protects.
	e.Use(middleware.SessionGate(authService, gate))

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.GET("/api/auth/me", authHandler.Me)

	// --- Reviews ---
	e.POST("/api/reviews", reviewHandler.Submit)
	e.GET("/api/reviews", reviewHandler.List)

	// --- Catalog (read-only proxy) ---
	e.GET("/api/products", productHandler.List)
	e.GET("/api/products/search", productHandler.Search)
	e.GET("/api/products/:id", productHandler.Get)

	// --- Admin (behind the session gate) ---
	e.GET("/api/admin/dashboard", adminHandler.Dashboard)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(catalogClient, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
