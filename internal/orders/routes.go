package orders

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Guards wraps routes by audience. Identify is optional auth for guest checkout.
type Guards struct {
	Identify func(http.Handler) http.Handler
	Protect  func(http.Handler) http.Handler
	Admin    func(http.Handler) http.Handler
}

func RegisterRoutes(r chi.Router, h *Handler, g Guards) {
	r.Route("/orders", func(r chi.Router) {
		r.With(g.Identify).Post("/checkout", h.Checkout)
		r.With(g.Protect).Get("/mine", h.Mine)
		r.Get("/{orderNumber}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(g.Protect, g.Admin)
			r.Get("/", h.List)
			r.Patch("/{orderNumber}/status", h.UpdateStatus)
		})
	})
}
