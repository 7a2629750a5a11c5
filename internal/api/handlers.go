package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/staticman/internal/checksum"
	"github.com/starford/staticman/internal/content"
)

// Handler holds API route handlers.
type Handler struct {
	entries *content.Collection
}

// NewHandler creates a new Handler.
func NewHandler(entries *content.Collection) *Handler {
	return &Handler{entries: entries}
}

// ListEntries handles GET /api/entries.
//
//	@Summary		List entries, newest first unless an order is given
//	@Tags			entries
//	@Produce		json
//	@Param			order_by	query		string	false	"Metadata key to sort by"
//	@Param			direction	query		string	false	"Sort direction"	Enums(asc, desc)
//	@Success		200			{object}	EntryListResponse
//	@Failure		400			{object}	errResponse
//	@Security		BearerAuth
//	@Router			/entries [get]
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	entries := h.entries
	if q.Has("order_by") || q.Has("direction") {
		dir, err := content.ParseDirection(q.Get("direction"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("direction must be asc or desc"))
			return
		}
		entries = entries.Ordered(content.Order{Key: q.Get("order_by"), Direction: dir})
	}

	items, err := entries.List(r.Context())
	if err != nil {
		writeError(w, r, "list entries", err)
		return
	}
	writeJSON(w, http.StatusOK, EntryListResponse{
		Entries: nonNilSlice(items),
		Total:   len(items),
	})
}

// GetEntry handles GET /api/entries/{slug}.
//
//	@Summary		Get a single entry by slug
//	@Tags			entries
//	@Produce		json
//	@Param			slug	path		string	true	"Entry slug"
//	@Success		200		{object}	Entry
//	@Success		304		"Not modified"
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/entries/{slug} [get]
func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("slug is required"))
		return
	}
	entry, err := h.entries.Get(r.Context(), slug)
	if err != nil {
		writeError(w, r, "get entry", err)
		return
	}
	w.Header().Set("ETag", checksum.ETag(entry.Checksum))
	if checksum.MatchETag(r.Header.Get("If-None-Match"), entry.Checksum) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// RandomEntry handles GET /api/random.
//
// With ?exclude=<slug> the named entry and every private entry are skipped.
//
//	@Summary		Get a random entry
//	@Tags			entries
//	@Produce		json
//	@Param			exclude	query		string	false	"Slug to exclude; also excludes private entries"
//	@Success		200		{object}	Entry
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/random [get]
func (h *Handler) RandomEntry(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		entry Entry
		err   error
	)
	if q.Has("exclude") {
		entry, err = h.entries.RandomExcept(r.Context(), q.Get("exclude"))
	} else {
		entry, err = h.entries.Random(r.Context())
	}
	if err != nil {
		writeError(w, r, "random entry", err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, entry)
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
