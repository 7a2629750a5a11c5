package content

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/starford/staticman/internal/apperr"
	"github.com/starford/staticman/internal/models"
)

var refNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func rawWith(meta map[string]any) RawRecord {
	return RawRecord{Source: "post.md", Meta: meta, Entry: "<p>hi</p>\n", Checksum: "abc"}
}

func TestAssemble_Strict(t *testing.T) {
	published := refNow.Add(-30 * time.Second)
	rec, err := assemble(rawWith(map[string]any{
		"title":  "Hello",
		"status": "public",
		"slug":   "hello",
		"date":   published,
		"views":  3,
	}), ModeStrict, refNow)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	want := models.Record{
		Title:  "Hello",
		Status: "public",
		Slug:   "hello",
		Date:   "30 seconds ago",
		Meta: map[string]string{
			"title":        "Hello",
			"status":       "public",
			"slug":         "hello",
			"date":         "2024-06-01T11:59:30Z",
			"dateRelative": "30 seconds ago",
			"views":        "3",
		},
		Entry:     "<p>hi</p>\n",
		Checksum:  "abc",
		Published: published,
		Source:    "post.md",
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_StringDate(t *testing.T) {
	rec, err := assemble(rawWith(map[string]any{
		"title": "T", "status": "s", "slug": "t", "date": "2024-05-31",
	}), ModeStrict, refNow)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if rec.Date != "1 day ago" {
		t.Errorf("date = %q, want 1 day ago", rec.Date)
	}
	if rec.Meta["date"] != "2024-05-31T00:00:00Z" {
		t.Errorf("meta date = %q", rec.Meta["date"])
	}
}

func TestAssemble_StrictSchemaErrors(t *testing.T) {
	base := func() map[string]any {
		return map[string]any{
			"title": "T", "status": "public", "slug": "t", "date": refNow,
		}
	}
	cases := []struct {
		name  string
		edit  func(map[string]any)
		field string
	}{
		{"missing title", func(m map[string]any) { delete(m, "title") }, "title"},
		{"missing status", func(m map[string]any) { delete(m, "status") }, "status"},
		{"missing slug", func(m map[string]any) { delete(m, "slug") }, "slug"},
		{"missing date", func(m map[string]any) { delete(m, "date") }, "date"},
		{"title not a string", func(m map[string]any) { m["title"] = 42 }, "title"},
		{"slug not a string", func(m map[string]any) { m["slug"] = true }, "slug"},
		{"date not a date", func(m map[string]any) { m["date"] = "yesterday-ish" }, "date"},
		{"date wrong type", func(m map[string]any) { m["date"] = 12 }, "date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := base()
			tc.edit(meta)
			_, err := assemble(rawWith(meta), ModeStrict, refNow)
			if !errors.Is(err, apperr.ErrSchema) {
				t.Fatalf("err = %v, want ErrSchema", err)
			}
			var e *apperr.Error
			if !errors.As(err, &e) || e.Field != tc.field {
				t.Errorf("field = %+v, want %q", e, tc.field)
			}
		})
	}
}

func TestAssemble_OpenCoercion(t *testing.T) {
	rec, err := assemble(rawWith(map[string]any{
		"title":  "Open",
		"draft":  true,
		"rating": 4.5,
		"author": map[string]any{"name": "Ada"},
		"tags":   []any{"a", "b"},
		"empty":  nil,
	}), ModeOpen, refNow)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	want := map[string]string{
		"title":  "Open",
		"draft":  "true",
		"rating": "4.5",
		"author": "",
		"tags":   "",
		"empty":  "",
	}
	if diff := cmp.Diff(want, rec.Meta); diff != "" {
		t.Errorf("meta mismatch (-want +got):\n%s", diff)
	}
	if rec.Slug != "" || rec.Date != "" || !rec.Published.IsZero() {
		t.Errorf("missing fields should stay empty: %+v", rec)
	}
}

func TestAssemble_OpenBadDateKept(t *testing.T) {
	rec, err := assemble(rawWith(map[string]any{"date": "someday"}), ModeOpen, refNow)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if rec.Meta["date"] != "someday" {
		t.Errorf("meta date = %q", rec.Meta["date"])
	}
	if _, ok := rec.Meta["dateRelative"]; ok {
		t.Error("dateRelative should be absent without a parseable date")
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(""); err != nil || m != ModeStrict {
		t.Errorf("ParseMode(\"\") = %q, %v", m, err)
	}
	if m, err := ParseMode("open"); err != nil || m != ModeOpen {
		t.Errorf("ParseMode(open) = %q, %v", m, err)
	}
	if _, err := ParseMode("loose"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
