package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/mockshop/commerce-api/internal/api/handler"
	"github.com/mockshop/commerce-api/internal/api/middleware"
	"github.com/mockshop/commerce-api/internal/core/domain"
	"github.com/mockshop/commerce-api/internal/core/service"
	"github.com/mockshop/commerce-api/internal/infrastructure/config"
	"github.com/mockshop/commerce-api/internal/infrastructure/db/memory"
)

// NewRouter builds the Echo instance with the in-memory stores, services, and
// all routes registered. Stores live as long as the returned instance.
func NewRouter(cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())

	// --- Stores ---
	users := memory.NewUserRepository()
	products := memory.NewProductRepository()
	orders := memory.NewOrderRepository()

	// --- Services ---
	hasher := service.NewPasswordHasher()
	tokens := service.NewTokenService(cfg.JWTSecret, 0)
	authService := service.NewAuthService(users, hasher, tokens, log)
	productService := service.NewProductService(products, log)
	orderService := service.NewOrderService(products, orders, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	healthHandler := handler.NewHealthHandler()

	requireAuth := middleware.Auth(tokens)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- Probes and telemetry ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, requireAuth)

	// --- Product routes (writes are admin-only) ---
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)
	e.POST("/products", productHandler.Create, requireAuth, requireAdmin)
	e.PATCH("/products/:id", productHandler.Update, requireAuth, requireAdmin)
	e.DELETE("/products/:id", productHandler.Delete, requireAuth, requireAdmin)

	// --- Order routes ---
	e.POST("/orders", orderHandler.Create, requireAuth)
	e.GET("/orders/me", orderHandler.Mine, requireAuth)

	return e
}
