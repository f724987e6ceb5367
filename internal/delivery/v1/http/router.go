package http

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/shan-traders/storefront-backend/docs" // Импорт сгенерированных файлов
	"github.com/shan-traders/storefront-backend/internal/cart"
	"github.com/shan-traders/storefront-backend/internal/cfg"
	"github.com/shan-traders/storefront-backend/internal/usecase"
	"github.com/shan-traders/storefront-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// Init собирает дерево маршрутов API.
// Сессия разрешается на каждом запросе; корзина прикрепляется ко всем
// маршрутам витрины, чтобы заявка могла опустошить её после отправки.
func (r *Router) Init(
	catalogUC usecase.CatalogUC,
	productUC usecase.ProductUC,
	quoteUC usecase.QuoteUC,
	authUC usecase.AuthUC,
	carts *cart.Store,
	config *cfg.Config,
) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	mw := NewMiddleware(authUC, carts, config.Admin, config.Redis, r.logger)

	catalogHandler := NewCatalogHandler(catalogUC, config.Minio, config.Admin, r.logger)
	productHandler := NewProductHandler(productUC, config.Minio, r.logger)
	cartHandler := NewCartHandler(r.logger)
	quoteHandler := NewQuoteHandler(quoteUC, carts, r.logger)
	authHandler := NewAuthHandler(authUC, mw, r.logger)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(mw.WithSession)

		registerCatalogRoutes(v1, catalogHandler)
		registerCartRoutes(v1, mw, cartHandler)
		registerQuoteRoutes(v1, mw, quoteHandler)
		registerAuthRoutes(v1, authHandler)
		registerAdminRoutes(v1, mw, productHandler)
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Get("/products", h.listProducts)
	router.Route("/categories", func(cat chi.Router) {
		cat.Get("/", h.listCategories)
		cat.Get("/{slug}/products", h.listCategoryProducts)
	})
}

func registerCartRoutes(router chi.Router, mw *Middleware, h *CartHandler) {
	router.Route("/cart", func(c chi.Router) {
		c.Use(mw.WithCart)
		c.Get("/", h.getCart)
		c.Delete("/", h.clearCart)
		c.Post("/items", h.addItem)
		c.Put("/items/{id}", h.updateItem)
		c.Delete("/items/{id}", h.removeItem)
	})
}

func registerQuoteRoutes(router chi.Router, mw *Middleware, h *QuoteHandler) {
	router.With(mw.WithCart).Post("/quote", h.submitQuote)
}

func registerAuthRoutes(router chi.Router, h *AuthHandler) {
	router.Route("/auth", func(a chi.Router) {
		a.Post("/login", h.login)
		a.Post("/signout", h.signOut)
		a.Get("/signout", methodNotAllowed)
	})
}

func registerAdminRoutes(router chi.Router, mw *Middleware, h *ProductHandler) {
	router.Route("/admin/products", func(adm chi.Router) {
		adm.Use(mw.RequireAdmin)
		adm.Post("/", h.createProduct)
		adm.Put("/{id}", h.updateProduct)
		adm.Delete("/{id}", h.deleteProduct)
	})
}
