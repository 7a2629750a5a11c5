package content

import (
	"fmt"
	"slices"
	"strings"

	"github.com/starford/staticman/internal/apperr"
	"github.com/starford/staticman/internal/models"
)

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection validates a direction; empty means Descending.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(s)) {
	case "", Descending:
		return Descending, nil
	case Ascending:
		return Ascending, nil
	}
	return "", fmt.Errorf("content: unknown direction %q", s)
}

// Order describes how records are sorted. An empty Key sorts by the header
// date; otherwise records are sorted by Meta[Key] compared as strings.
type Order struct {
	Key       string
	Direction Direction
}

// sortRecords sorts recs in place. The sort is stable, so ties keep listing order.
func sortRecords(recs []models.Record, o Order) error {
	if o.Key == "" {
		return sortByDate(recs, o.Direction)
	}

	for _, r := range recs {
		if _, ok := r.Meta[o.Key]; !ok {
			return apperr.Schema(r.Source, o.Key, errMissing)
		}
	}
	slices.SortStableFunc(recs, func(a, b models.Record) int {
		c := strings.Compare(a.Meta[o.Key], b.Meta[o.Key])
		if o.Direction == Ascending {
			return c
		}
		return -c
	})
	return nil
}

func sortByDate(recs []models.Record, dir Direction) error {
	for _, r := range recs {
		if r.Published.IsZero() {
			return apperr.Schema(r.Source, models.KeyDate, errMissing)
		}
	}
	slices.SortStableFunc(recs, func(a, b models.Record) int {
		c := a.Published.Compare(b.Published)
		if dir == Ascending {
			return c
		}
		return -c
	})
	return nil
}
