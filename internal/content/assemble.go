package content

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cast"

	"github.com/starford/staticman/internal/apperr"
	"github.com/starford/staticman/internal/models"
	"github.com/starford/staticman/internal/timeago"
)

// Mode selects how strictly header fields are checked.
type Mode string

const (
	// ModeStrict requires title, status and slug strings and a date.
	ModeStrict Mode = "strict"
	// ModeOpen copies whatever the header holds and tolerates missing fields.
	ModeOpen Mode = "open"
)

// ParseMode validates a configured mode; empty means ModeStrict.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeStrict:
		return ModeStrict, nil
	case ModeOpen:
		return ModeOpen, nil
	}
	return "", fmt.Errorf("content: unknown mode %q", s)
}

var errMissing = errors.New("missing")

// assemble shapes raw into a Record, deriving the relative date from now.
func assemble(raw RawRecord, mode Mode, now time.Time) (models.Record, error) {
	meta := make(map[string]string, len(raw.Meta)+1)
	for k, v := range raw.Meta {
		meta[k] = toString(v)
	}

	rec := models.Record{
		Meta:     meta,
		Entry:    raw.Entry,
		Checksum: raw.Checksum,
		Source:   raw.Source,
	}

	if mode == ModeStrict {
		for _, key := range []string{models.KeyTitle, models.KeyStatus, models.KeySlug} {
			v, ok := raw.Meta[key]
			if !ok {
				return models.Record{}, apperr.Schema(raw.Source, key, errMissing)
			}
			if _, ok := v.(string); !ok {
				return models.Record{}, apperr.Schema(raw.Source, key, fmt.Errorf("want string, got %T", v))
			}
		}
	}
	rec.Title = meta[models.KeyTitle]
	rec.Status = meta[models.KeyStatus]
	rec.Slug = meta[models.KeySlug]

	published, err := dateField(raw.Meta)
	switch {
	case err == nil:
		rec.Published = published
		rec.Date = timeago.Relative(published, now)
		meta[models.KeyDate] = published.Format(time.RFC3339)
		meta[models.KeyDateRelative] = rec.Date
	case mode == ModeStrict:
		return models.Record{}, apperr.Schema(raw.Source, models.KeyDate, err)
	}

	return rec, nil
}

// dateField reads the header date. YAML timestamps may arrive as time.Time
// or as plain strings depending on quoting, so both are accepted.
func dateField(meta map[string]any) (time.Time, error) {
	v, ok := meta[models.KeyDate]
	if !ok {
		return time.Time{}, errMissing
	}
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case string:
		t, err := cast.ToTimeE(d)
		if err != nil {
			return time.Time{}, fmt.Errorf("want date: %w", err)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("want date, got %T", v)
}

// toString coerces a header value to a string. Values with no string form,
// such as nested maps and lists, become "".
func toString(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.Format(time.RFC3339)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}
