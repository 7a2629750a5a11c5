// Package parser splits content files into a YAML header and a Markdown body.
package parser

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Delimiter opens and closes the header block.
const Delimiter = "---"

// ErrNoHeader is returned when a file has no closed header block.
var ErrNoHeader = errors.New("parser: header block not closed")

// Result holds the output of parsing a content file.
type Result struct {
	Meta map[string]any
	Body string
}

// Parse splits data and decodes its header. Files without a closed header
// return ErrNoHeader; callers skip them.
func Parse(data []byte) (*Result, error) {
	header, body, ok := Split(data)
	if !ok {
		return nil, ErrNoHeader
	}
	meta, err := decodeHeader(header)
	if err != nil {
		return nil, err
	}
	return &Result{Meta: meta, Body: string(body)}, nil
}

// Split separates the header block from the body.
//
// The opening delimiter must be the first line, or the second line when the
// first is blank. The header runs until the next delimiter line; everything
// after that line is the body. ok is false when either delimiter is missing.
func Split(data []byte) (header, body []byte, ok bool) {
	// First pass: locate the opening delimiter.
	line, rest, more := cutLine(data)
	if isBlank(line) && more {
		line, rest, more = cutLine(rest)
	}
	if !isDelimiter(line) || !more {
		return nil, nil, false
	}

	// Second pass: scan for the closing delimiter.
	start := len(data) - len(rest)
	for pos := start; ; {
		line, next, more := cutLine(data[pos:])
		if isDelimiter(line) {
			return data[start:pos], next, true
		}
		if !more {
			return nil, nil, false
		}
		pos = len(data) - len(next)
	}
}

// cutLine returns the first line of data without its newline, the remainder
// after the newline, and whether a newline was found.
func cutLine(data []byte) (line, rest []byte, found bool) {
	i := bytes.IndexByte(data, '\n')
	if i < 0 {
		return data, nil, false
	}
	return data[:i], data[i+1:], true
}

func isDelimiter(line []byte) bool {
	return string(bytes.TrimRight(line, " \t\r")) == Delimiter
}

func isBlank(line []byte) bool {
	return len(bytes.TrimSpace(line)) == 0
}

// decodeHeader parses the header span as a YAML mapping. An empty or null
// header yields an empty map.
func decodeHeader(header []byte) (map[string]any, error) {
	meta := map[string]any{}
	if isBlank(header) {
		return meta, nil
	}
	if err := yaml.Unmarshal(header, &meta); err != nil {
		return nil, fmt.Errorf("parser: decode header: %w", err)
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return meta, nil
}
