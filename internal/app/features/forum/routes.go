// internal/app/features/forum/routes.go
package forum

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted under /forum.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/posts", h.ServeListPosts)
	r.Post("/posts", h.ServeCreatePost)
	r.Get("/posts/{post_id}/comments", h.ServeListComments)
	r.Post("/comments", h.ServeCreateComment)
	return r
}
