package handler

import "github.com/gofiber/fiber/v2"

// Handlers groups every route handler the API serves.
type Handlers struct {
	Health     *HealthHandler
	Banners    *BannerHandler
	Shops      *ShopHandler
	Categories *CategoryHandler
	Coupons    *CouponHandler
	Deals      *DealHandler
	Components *ComponentHandler
	Users      *UserHandler
}

// RegisterRoutes mounts /health and the /api resources on app.
func RegisterRoutes(app *fiber.App, h Handlers) {
	app.Get("/health", h.Health.Check)

	api := app.Group("/api")

	banners := api.Group("/banners")
	banners.Get("/", h.Banners.List)
	banners.Post("/", h.Banners.Create)
	banners.Get("/:id", h.Banners.Get)
	banners.Put("/:id", h.Banners.Update)
	banners.Delete("/:id", h.Banners.Delete)

	shops := api.Group("/shops")
	shops.Get("/", h.Shops.List)
	shops.Post("/", h.Shops.Create)
	shops.Get("/:id", h.Shops.Get)
	shops.Put("/:id", h.Shops.Update)
	shops.Delete("/:id", h.Shops.Delete)

	categories := api.Group("/categories")
	categories.Get("/", h.Categories.List)
	categories.Post("/", h.Categories.Create)
	categories.Get("/:id", h.Categories.Get)
	categories.Put("/:id", h.Categories.Update)
	categories.Delete("/:id", h.Categories.Delete)

	coupons := api.Group("/coupons")
	coupons.Get("/", h.Coupons.List)
	coupons.Post("/", h.Coupons.Create)
	coupons.Get("/:id", h.Coupons.Get)
	coupons.Put("/:id", h.Coupons.Update)
	coupons.Delete("/:id", h.Coupons.Delete)

	deals := api.Group("/deals")
	deals.Get("/", h.Deals.List)
	deals.Post("/", h.Deals.Create)
	deals.Get("/:id", h.Deals.Get)
	deals.Put("/:id", h.Deals.Update)
	deals.Delete("/:id", h.Deals.Delete)

	components := api.Group("/components")
	components.Get("/", h.Components.List)
	components.Post("/", h.Components.Create)
	// Must precede /:id
	components.Put("/reorder", h.Components.Reorder)
	components.Get("/:id", h.Components.Get)
	components.Put("/:id", h.Components.Update)
	components.Delete("/:id", h.Components.Delete)

	users := api.Group("/users")
	users.Post("/", h.Users.Create)
	users.Get("/:id", h.Users.Get)
}
