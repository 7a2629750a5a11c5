// Package testutil provides shared test helpers for setting up content directories.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/starford/staticman/internal/storage"
)

// Now is the fixed reference time used across tests.
var Now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// Clock returns a clock stuck at Now.
func Clock() func() time.Time {
	return func() time.Time { return Now }
}

// ContentDir creates a temporary content directory with a storage.Provider.
func ContentDir(t *testing.T) (string, *storage.FS) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// WriteFile writes content to name under dir.
func WriteFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// Entry builds a content file with the four standard header fields.
func Entry(title, status, slug string, date time.Time, body string) string {
	return fmt.Sprintf("---\ntitle: %q\nstatus: %s\nslug: %s\ndate: %s\n---\n%s",
		title, status, slug, date.Format(time.RFC3339), body)
}

// WriteEntry writes an Entry to <slug>.md under dir.
func WriteEntry(t *testing.T, dir, title, status, slug string, date time.Time, body string) {
	t.Helper()
	WriteFile(t, dir, slug+".md", Entry(title, status, slug, date, body))
}
