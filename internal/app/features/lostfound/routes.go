// internal/app/features/lostfound/routes.go
package lostfound

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted under /lostfound.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.ServeCreate)
	return r
}
