package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/starford/staticman/internal/content"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
func NewRouter(entries *content.Collection, authEnabled bool, token string) chi.Router {
	h := NewHandler(entries)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Get("/entries", h.ListEntries)
	r.Get("/entries/{slug}", h.GetEntry)
	r.Get("/random", h.RandomEntry)

	return r
}
