package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/shopnile/storefront-backend/internal/config"
	"github.com/shopnile/storefront-backend/internal/database"
	"github.com/shopnile/storefront-backend/internal/handlers"
	"github.com/shopnile/storefront-backend/internal/logging"
	"github.com/shopnile/storefront-backend/internal/middleware"
	"github.com/shopnile/storefront-backend/internal/paystack"
	"github.com/shopnile/storefront-backend/internal/routes"
	"github.com/shopnile/storefront-backend/internal/services"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Payment gateway
	gateway := paystack.NewClient(cfg.PaystackBaseURL, cfg.PaystackSecretKey, cfg.PaystackTimeout)

	// Services
	authService := services.NewAuthService(database.DB, cfg)
	notificationService := services.NewNotificationService(database.DB)
	cartService := services.NewCartService(database.DB, cfg)
	couponService := services.NewCouponService(database.DB)
	checkoutService := services.NewCheckoutService(database.DB, cfg, gateway, couponService, notificationService)
	paymentService := services.NewPaymentService(database.DB, cfg, gateway, couponService, notificationService)
	addressService := services.NewAddressService(database.DB)
	categoryService := services.NewCategoryService(database.DB)
	productService := services.NewProductService(database.DB)
	variantService := services.NewVariantService(database.DB)
	wishlistService := services.NewWishlistService(database.DB, notificationService)
	orderService := services.NewOrderService(database.DB)
	dashboardService := services.NewDashboardService(database.DB)

	// Wishlist price/stock watcher
	watcherDone := make(chan struct{})
	wishlistService.StartWatcher(cfg.WishlistWatchInterval, watcherDone)

	// Handlers
	h := routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService),
		Health:       handlers.NewHealthHandler(),
		Cart:         handlers.NewCartHandler(cartService),
		Checkout:     handlers.NewCheckoutHandler(database.DB, checkoutService),
		Payment:      handlers.NewPaymentHandler(cfg, paymentService),
		Coupon:       handlers.NewCouponHandler(couponService),
		Address:      handlers.NewAddressHandler(addressService),
		Category:     handlers.NewCategoryHandler(categoryService),
		Product:      handlers.NewProductHandler(productService),
		Variant:      handlers.NewVariantHandler(variantService),
		Wishlist:     handlers.NewWishlistHandler(wishlistService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Order:        handlers.NewOrderHandler(orderService),
		Dashboard:    handlers.NewDashboardHandler(dashboardService),
	}

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    8 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, database.DB, h)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	close(watcherDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
