package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vintage-books/internal/api/http/handlers"
	"github.com/spec-kit/vintage-books/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Cart           *handlers.CartHandler
	Wishlist       *handlers.WishlistHandler
	Orders         *handlers.OrdersHandler
	Backup         *handlers.BackupHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Post("/logout", cfg.Users.Logout)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Users.Me)

	users := app.Group("/users", cfg.AuthMiddleware.Handle)
	users.Get("/", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.Users.Update)
	users.Get("/:id/orders", cfg.Orders.ListByUser)

	cart := app.Group("/cart")
	cart.Get("/", cfg.Cart.List)
	cart.Get("/summary", cfg.Cart.Summary)
	cart.Post("/items", cfg.Cart.Add)
	cart.Put("/items/:id", cfg.Cart.UpdateQuantity)
	cart.Delete("/items/:id", cfg.Cart.Remove)
	cart.Delete("/", cfg.Cart.Clear)

	wishlist := app.Group("/wishlist")
	wishlist.Get("/", cfg.Wishlist.List)
	wishlist.Post("/items", cfg.Wishlist.Add)
	wishlist.Delete("/items/:id", cfg.Wishlist.Remove)

	app.Get("/checkout/quote", cfg.Orders.Quote)
	app.Post("/checkout", cfg.Orders.Checkout)

	orders := app.Group("/orders")
	orders.Get("/", cfg.Orders.List)
	orders.Get("/my", cfg.Orders.My)
	orders.Get("/:id", cfg.Orders.Get)
	orders.Put("/:id/status", cfg.AuthMiddleware.Handle, cfg.Orders.UpdateStatus)

	backup := app.Group("/backup", cfg.AuthMiddleware.Handle)
	backup.Get("/export", cfg.Backup.Export)
	backup.Post("/import", cfg.Backup.Import)
	backup.Post("/reset", cfg.Backup.Reset)
}
