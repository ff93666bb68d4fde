package routesapi

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/routes", h.ListRoutes)
	r.Get("/routes/search", h.SearchRoute)
}
