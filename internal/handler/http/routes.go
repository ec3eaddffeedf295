package http

import (
	"github.com/MKhiriev/go-gift-catalog/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const productIDParam = "productId"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// products
	router.With(h.requireRole(models.RoleAdmin)).Post("/api/products", h.createProduct)
	router.Get("/api/products", h.listProducts)
	router.Get("/api/products/{"+productIDParam+"}", h.getProduct)
	router.Put("/api/products/{"+productIDParam+"}", h.updateProduct)
	router.Delete("/api/products/{"+productIDParam+"}", h.deleteProduct)

	// members
	router.With(h.withRateLimit).Post("/api/members/register", h.register)
	router.With(h.withRateLimit).Post("/api/members/login", h.login)

	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
