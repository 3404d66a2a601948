package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/artesania/storefront-api/internal/api/handler"
	"github.com/artesania/storefront-api/internal/api/middleware"
	"github.com/artesania/storefront-api/internal/core/service"
	"github.com/artesania/storefront-api/internal/infrastructure/config"
	mongostore "github.com/artesania/storefront-api/internal/infrastructure/db/mongo"
	redisstore "github.com/artesania/storefront-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	authRepo := mongostore.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, service.TokenSettings{
		Secret:   cfg.Token.Secret,
		Issuer:   cfg.Token.Issuer,
		Audience: cfg.Token.Audience,
		TTL:      cfg.Token.TTL,
	}, log)
	authHandler := handler.NewAuthHandler(authService)

	orderRepo := mongostore.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo, log)
	orderHandler := handler.NewOrderHandler(orderService)

	productRepo := mongostore.NewProductRepository(db)
	catalogCache := redisstore.NewCatalogCache(rdb)
	catalogService := service.NewCatalogService(productRepo, catalogCache, log)
	productHandler := handler.NewProductHandler(catalogService)

	authMiddleware := middleware.Auth(middleware.TokenVerifier{
		Secret:   cfg.Token.Secret,
		Issuer:   cfg.Token.Issuer,
		Audience: cfg.Token.Audience,
	})

	// --- Public routes ---
	e.POST("/api/token", authHandler.CreateToken)
	e.GET("/api/products", productHandler.List)

	// --- Owner-scoped routes ---
	orders := e.Group("/api/orders", authMiddleware)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("", orderHandler.Create)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
