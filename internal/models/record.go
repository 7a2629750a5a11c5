// Package models defines the domain types for staticman.
package models

import "time"

// Metadata keys with special meaning.
const (
	KeyTitle        = "title"
	KeyStatus       = "status"
	KeySlug         = "slug"
	KeyDate         = "date"
	KeyDateRelative = "dateRelative"
)

// StatusPrivate marks a record that random picks must skip.
const StatusPrivate = "private"

// Record is a parsed content file as returned to callers.
type Record struct {
	Title    string            `json:"title"`
	Status   string            `json:"status"`
	Slug     string            `json:"slug"`
	Date     string            `json:"date"`
	Meta     map[string]string `json:"meta"`
	Entry    string            `json:"entry"`
	Checksum string            `json:"checksum"`

	// Published is the header date; it drives the default ordering.
	Published time.Time `json:"-"`
	// Source is the file name the record was loaded from.
	Source string `json:"-"`
}

// IsPrivate reports whether the record is flagged private.
func (r Record) IsPrivate() bool {
	return r.Status == StatusPrivate
}

// SourceFile is a lightweight representation returned by directory listings.
type SourceFile struct {
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}
