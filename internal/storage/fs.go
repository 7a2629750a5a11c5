package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/staticman/internal/apperr"
	"github.com/starford/staticman/internal/models"
)

// FS implements Provider backed by the local file system.
type FS struct {
	root string // absolute path to the content directory
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, apperr.IO(root, fmt.Errorf("storage: resolve root: %w", err))
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, apperr.IO(root, fmt.Errorf("storage: stat root: %w", err))
	}
	if !info.IsDir() {
		return nil, apperr.IO(root, fmt.Errorf("storage: root is not a directory: %s", abs))
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute content directory.
func (f *FS) Root() string {
	return f.root
}

// safePath resolves a relative name against the root and rejects
// any result that escapes it (directory traversal).
func (f *FS) safePath(rel string) (string, error) {
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: absolute paths not allowed: %s", rel)
	}
	abs, err := filepath.Abs(filepath.Join(f.root, cleaned))
	if err != nil {
		return "", fmt.Errorf("storage: resolve path: %w", err)
	}
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage: path escapes content root: %s", rel)
	}
	return abs, nil
}

// List returns the files directly under the root whose name ends with ext,
// in lexical name order. Directories are not descended.
func (f *FS) List(ext string) ([]models.SourceFile, error) {
	entries, err := os.ReadDir(f.root)
	if err != nil {
		return nil, apperr.IO(f.root, fmt.Errorf("storage: list: %w", err))
	}
	var out []models.SourceFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, apperr.IO(e.Name(), fmt.Errorf("storage: stat: %w", err))
		}
		if !info.Mode().IsRegular() {
			continue
		}
		out = append(out, models.SourceFile{
			Name:    e.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return out, nil
}

// Read returns the raw bytes of a content file.
func (f *FS) Read(name string) ([]byte, error) {
	abs, err := f.safePath(name)
	if err != nil {
		return nil, apperr.IO(name, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, apperr.IO(name, fmt.Errorf("storage: read: %w", err))
	}
	return data, nil
}
