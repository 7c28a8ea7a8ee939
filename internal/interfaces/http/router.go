package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/CompraGlobal-api/internal/application/auth"
	appcart "github.com/jhoicas/CompraGlobal-api/internal/application/cart"
	appcatalog "github.com/jhoicas/CompraGlobal-api/internal/application/catalog"
	appwishlist "github.com/jhoicas/CompraGlobal-api/internal/application/wishlist"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CatalogUC   *appcatalog.UseCase
	SelectionUC *appcart.SelectionUseCase
	Composer    *appcart.Composer
	QuoteUC     *appcart.QuoteUseCase
	Reconciler  *appwishlist.Reconciler
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Reconciler)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/profile", authHandler.Profile)
	protected.Put("/auth/profile", authHandler.UpdateProfile)
	protected.Post("/auth/logout", authHandler.Logout)

	// Ficha de producto y recomendados (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Get("/:source/:id", productHandler.GetProduct)
	products.Get("/:source/:id/related", productHandler.Related)
	products.Get("/:source/:id/like", productHandler.Like)

	// Selección de variantes y carrito (protegido)
	cartHandler := NewCartHandler(deps.SelectionUC, deps.Composer, deps.QuoteUC)
	selection := protected.Group("/selection")
	selection.Get("/:source/:id", cartHandler.View)
	selection.Post("/:source/:id/adjust", cartHandler.Adjust)
	selection.Post("/:source/:id/group", cartHandler.SetGroup)

	cartGroup := protected.Group("/cart")
	cartGroup.Post("/:source/:id", cartHandler.Submit)
	cartGroup.Get("/:source/:id/quote", cartHandler.Quote)

	// Wishlist (protegido)
	wishlistHandler := NewWishlistHandler(deps.Reconciler)
	wishlist := protected.Group("/wishlist")
	wishlist.Get("/", wishlistHandler.List)
	wishlist.Post("/toggle", wishlistHandler.Toggle)
}
