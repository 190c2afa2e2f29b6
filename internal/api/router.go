package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// NewRouter creates a chi router with the API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(h *Handler, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(AuthMiddleware(authEnabled, token))

	// Gallery view.
	r.Get("/gallery", h.Gallery)
	r.Get("/gallery/tags", h.Tags)
	r.Post("/gallery/reload", h.Reload)

	// Viewer (full-content overlay) lifecycle.
	r.Get("/viewer", h.ViewerState)
	r.Post("/viewer/open", h.ViewerOpen)
	r.Post("/viewer/dismiss", h.ViewerDismiss)
	r.Post("/viewer/done", h.ViewerDone)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}

// MountUI registers the server-rendered page, the card-region partial, and
// the static assets on the given router. These stay unauthenticated; the
// gallery is a public surface.
func (h *Handler) MountUI(r chi.Router) {
	r.Get("/", h.Page)
	r.Get("/partials/gallery", h.Partials)
	r.Get("/static/gallery.css", h.StaticCSS)
	r.Get("/static/gallery.js", h.StaticJS)
}
