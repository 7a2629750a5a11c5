package api

import "github.com/starford/staticman/internal/models"

// Entry is a single record in API responses (aliased from the domain layer).
type Entry = models.Record

// EntryListResponse wraps the ordered entry listing.
type EntryListResponse struct {
	Entries []Entry `json:"entries" validate:"required"`
	Total   int     `json:"total" example:"42" validate:"required"`
}
