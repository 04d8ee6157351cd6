package products

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/products", h.List)
	r.Get("/products/categories", h.Categories)
}
