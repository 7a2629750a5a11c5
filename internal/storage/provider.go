// Package storage defines the read-only content directory abstraction.
package storage

import "github.com/starford/staticman/internal/models"

// Provider is the interface for content file access.
type Provider interface {
	// List returns every regular file directly under the root whose name ends with ext.
	List(ext string) ([]models.SourceFile, error)
	// Read returns the raw bytes of the file at name (relative to the root).
	Read(name string) ([]byte, error)
}
