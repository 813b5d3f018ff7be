package http

import (
	"context"
	"net/http"

	"github.com/Ekrem-A/Catalog.Api/internal/usecase"
	"github.com/Ekrem-A/Catalog.Api/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(prUC usecase.ProductUC, catUC usecase.CategoryUC, brUC usecase.BrandUC) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(middleware.Recoverer)
	r.router.Use(correlationIDMiddleware)

	r.router.Route("/api", func(api chi.Router) {
		registerProductRoutes(api, NewProductHandler(prUC, r.logger))
		registerCategoryRoutes(api, NewCategoryHandler(catUC, r.logger))
		registerBrandRoutes(api, NewBrandHandler(brUC, r.logger))
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/search", h.searchProducts)
		pr.Get("/{id}", h.getProduct)
		pr.Post("/", h.createProduct)
		pr.Put("/{id}", h.updateProduct)
		pr.Delete("/{id}", h.deleteProduct)
	})
}

func registerCategoryRoutes(router chi.Router, h *CategoryHandler) {
	router.Route("/categories", func(cat chi.Router) {
		cat.Get("/", h.listCategories)
		cat.Post("/", h.createCategory)
		cat.Put("/{id}", h.updateCategory)
		cat.Delete("/{id}", h.deleteCategory)
	})
}

func registerBrandRoutes(router chi.Router, h *BrandHandler) {
	router.Route("/brands", func(br chi.Router) {
		br.Get("/", h.listBrands)
		br.Post("/", h.createBrand)
		br.Put("/{id}", h.updateBrand)
	})
}

// correlationIDMiddleware пробрасывает идентификатор запроса chi
// в контекст, откуда его подхватывают заголовки публикуемых событий.
func correlationIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if reqID := middleware.GetReqID(ctx); reqID != "" {
			ctx = context.WithValue(ctx, "correlation_id", reqID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
