// Package render converts Markdown bodies into HTML.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer turns a raw body into display markup.
type Renderer interface {
	Render(src []byte) (string, error)
}

// Options tune the Markdown renderer.
type Options struct {
	// HardWraps renders single newlines as <br>.
	HardWraps bool `yaml:"hard_wraps"`
	// XHTML emits self-closing void elements.
	XHTML bool `yaml:"xhtml"`
	// Unsafe passes raw HTML in the body through unescaped.
	Unsafe bool `yaml:"unsafe"`
}

// Markdown renders GitHub Flavored Markdown with goldmark.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown creates a Markdown renderer.
func NewMarkdown(opts Options) *Markdown {
	var ropts []renderer.Option
	if opts.HardWraps {
		ropts = append(ropts, html.WithHardWraps())
	}
	if opts.XHTML {
		ropts = append(ropts, html.WithXHTML())
	}
	if opts.Unsafe {
		ropts = append(ropts, html.WithUnsafe())
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(ropts...),
	)
	return &Markdown{md: md}
}

// Render converts src to HTML.
func (m *Markdown) Render(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render: convert markdown: %w", err)
	}
	return buf.String(), nil
}

// Func adapts a plain function to the Renderer interface.
type Func func(src []byte) (string, error)

// Render calls f(src).
func (f Func) Render(src []byte) (string, error) {
	return f(src)
}
