package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/shopnile/storefront-backend/internal/config"
	"github.com/shopnile/storefront-backend/internal/handlers"
	"github.com/shopnile/storefront-backend/internal/middleware"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Health       *handlers.HealthHandler
	Cart         *handlers.CartHandler
	Checkout     *handlers.CheckoutHandler
	Payment      *handlers.PaymentHandler
	Coupon       *handlers.CouponHandler
	Address      *handlers.AddressHandler
	Category     *handlers.CategoryHandler
	Product      *handlers.ProductHandler
	Variant      *handlers.VariantHandler
	Wishlist     *handlers.WishlistHandler
	Notification *handlers.NotificationHandler
	Order        *handlers.OrderHandler
	Dashboard    *handlers.DashboardHandler
}

func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health
	api.Get("/health", h.Health.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), h.Auth.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), h.Auth.GetProfile)
	api.Put("/auth/me", middleware.JWTProtected(cfg), h.Auth.UpdateProfile)

	// Catalog — public reads
	api.Get("/categories", h.Category.List)
	api.Get("/products", h.Product.List)
	api.Get("/products/:id", h.Product.Get)
	api.Get("/products/:id/variants", h.Variant.ListByProduct)
	api.Get("/variants/:id", h.Variant.Get)

	// Coupon preview — public, no redemption is recorded
	api.Post("/coupons/apply", h.Coupon.Preview)

	// Payment provider callback — no JWT, the provider redirects here
	api.Get("/payments/callback", h.Payment.Callback)

	// Protected customer routes
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Get("/cart", h.Cart.Get)
	protected.Post("/cart/items", h.Cart.AddItem)
	protected.Put("/cart/items/:id", h.Cart.UpdateItem)
	protected.Delete("/cart/items/:id", h.Cart.RemoveItem)
	protected.Delete("/cart", h.Cart.Clear)

	protected.Post("/checkout", h.Checkout.Checkout)

	protected.Get("/orders", h.Order.ListMine)
	protected.Post("/orders/:id/receipt", h.Payment.UploadReceipt)

	protected.Get("/addresses", h.Address.List)
	protected.Post("/addresses", h.Address.Create)
	protected.Put("/addresses/:id", h.Address.Update)
	protected.Delete("/addresses/:id", h.Address.Delete)

	protected.Get("/wishlist", h.Wishlist.List)
	protected.Post("/wishlist/:productId", h.Wishlist.Add)
	protected.Delete("/wishlist/:productId", h.Wishlist.Remove)

	protected.Get("/notifications", h.Notification.List)
	protected.Put("/notifications/:id/read", h.Notification.MarkRead)
	protected.Put("/notifications/read-all", h.Notification.MarkAllRead)

	protected.Get("/dashboard", h.Dashboard.Overview)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))

	admin.Post("/categories", h.Category.Create)
	admin.Delete("/categories/:id", h.Category.Delete)
	admin.Put("/categories/:id/restore", h.Category.Restore)

	admin.Post("/products", h.Product.Create)
	admin.Put("/products/:id", h.Product.Update)
	admin.Delete("/products/:id", h.Product.Delete)
	admin.Put("/products/:id/recover", h.Product.Recover)

	admin.Post("/variants", h.Variant.Upsert)
	admin.Post("/variants/bulk", h.Variant.BulkUpsert)
	admin.Delete("/variants/:id", h.Variant.Delete)

	admin.Post("/coupons", h.Coupon.Create)
	admin.Get("/coupons", h.Coupon.List)
	admin.Get("/coupons/:id", h.Coupon.Get)
	admin.Delete("/coupons/:id", h.Coupon.Delete)
	admin.Put("/coupons/:id/restore", h.Coupon.Restore)

	admin.Get("/orders", h.Order.List)
	admin.Get("/orders/:id", h.Order.Get)
	admin.Put("/orders/:id/status", h.Order.UpdateStatus)
	admin.Put("/orders/:id/confirm-payment", h.Payment.Confirm)
}
