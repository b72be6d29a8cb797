// internal/app/features/competitions/routes.go
package competitions

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted under /competitions.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.ServeCreate)
	return r
}
