// Package apperr defines the error kinds surfaced by the content loader.
package apperr

import (
	"errors"
	"strings"
)

var (
	ErrIO          = errors.New("io error")
	ErrParse       = errors.New("parse error")
	ErrSchema      = errors.New("schema error")
	ErrNotFound    = errors.New("not found")
	ErrEmptyResult = errors.New("empty result")
)

// Error attaches a kind and the offending file (and field, for schema errors)
// to an underlying cause. errors.Is matches both the kind and the cause.
type Error struct {
	Kind  error
	Path  string
	Field string
	Err   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Path != "" {
		b.WriteString(": ")
		b.WriteString(e.Path)
	}
	if e.Field != "" {
		b.WriteString(": field ")
		b.WriteString(e.Field)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// IO wraps err as an ErrIO for path.
func IO(path string, err error) error {
	return &Error{Kind: ErrIO, Path: path, Err: err}
}

// Parse wraps err as an ErrParse for path.
func Parse(path string, err error) error {
	return &Error{Kind: ErrParse, Path: path, Err: err}
}

// Schema reports a missing or mistyped metadata field.
func Schema(path, field string, err error) error {
	return &Error{Kind: ErrSchema, Path: path, Field: field, Err: err}
}
