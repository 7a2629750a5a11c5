// Package content loads a directory of Markdown files with YAML headers and
// serves the parsed records.
//
// Nothing is cached: every query lists the directory, reads and parses each
// file, assembles the records and orders them again.
package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/starford/staticman/internal/apperr"
	"github.com/starford/staticman/internal/checksum"
	"github.com/starford/staticman/internal/parser"
	"github.com/starford/staticman/internal/render"
	"github.com/starford/staticman/internal/storage"
)

// DefaultExtension is the content file suffix used when none is configured.
const DefaultExtension = ".md"

// RawRecord is a parsed file before it is shaped into a models.Record.
type RawRecord struct {
	Source   string
	Meta     map[string]any
	Entry    string // rendered body
	Checksum string
}

// Loader turns the files of a content directory into RawRecords.
type Loader struct {
	store    storage.Provider
	renderer render.Renderer
	ext      string
	isolate  bool
	logger   *slog.Logger
}

// NewLoader creates a Loader reading files ending in ext from store.
// When isolate is true, a file that fails to parse or render is logged and
// skipped; otherwise it fails the whole load.
func NewLoader(store storage.Provider, renderer render.Renderer, ext string, isolate bool, logger *slog.Logger) *Loader {
	if ext == "" {
		ext = DefaultExtension
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{store: store, renderer: renderer, ext: ext, isolate: isolate, logger: logger}
}

// errSkip marks a file that contributes no record without being an error.
var errSkip = errors.New("content: skip file")

// Load returns one RawRecord per file with a closed header, in listing order.
func (l *Loader) Load(ctx context.Context) ([]RawRecord, error) {
	files, err := l.store.List(l.ext)
	if err != nil {
		return nil, err
	}

	out := make([]RawRecord, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := l.loadFile(f.Name)
		switch {
		case err == nil:
			out = append(out, raw)
		case errors.Is(err, errSkip):
			l.logger.Debug("skipping file without closed header", slog.String("file", f.Name))
		case l.isolate && errors.Is(err, apperr.ErrParse):
			l.logger.Warn("skipping malformed file",
				slog.String("file", f.Name),
				slog.String("error", err.Error()))
		default:
			return nil, err
		}
	}
	return out, nil
}

func (l *Loader) loadFile(name string) (RawRecord, error) {
	data, err := l.store.Read(name)
	if err != nil {
		return RawRecord{}, err
	}
	if !utf8.Valid(data) {
		return RawRecord{}, apperr.IO(name, fmt.Errorf("content: file is not valid UTF-8 text"))
	}

	res, err := parser.Parse(data)
	if errors.Is(err, parser.ErrNoHeader) {
		return RawRecord{}, errSkip
	}
	if err != nil {
		return RawRecord{}, apperr.Parse(name, err)
	}

	entry, err := l.renderer.Render([]byte(res.Body))
	if err != nil {
		return RawRecord{}, apperr.Parse(name, err)
	}

	return RawRecord{
		Source:   name,
		Meta:     res.Meta,
		Entry:    entry,
		Checksum: checksum.Sum(data),
	}, nil
}
