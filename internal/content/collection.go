package content

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/starford/staticman/internal/apperr"
	"github.com/starford/staticman/internal/models"
	"github.com/starford/staticman/internal/render"
	"github.com/starford/staticman/internal/storage"
)

// Collection is the query surface over a content directory.
// It holds configuration only and is safe for concurrent use.
type Collection struct {
	store    storage.Provider
	renderer render.Renderer
	ext      string
	mode     Mode
	order    Order
	isolate  bool
	now      func() time.Time
	intn     func(n int) int
	logger   *slog.Logger
}

// Option configures a Collection.
type Option func(*Collection)

// WithMode sets the schema mode (default ModeStrict).
func WithMode(m Mode) Option {
	return func(c *Collection) {
		c.mode = m
	}
}

// WithOrder sets the ordering (default: date, descending).
func WithOrder(o Order) Option {
	return func(c *Collection) {
		c.order = o
	}
}

// WithExtension sets the content file suffix (default ".md").
func WithExtension(ext string) Option {
	return func(c *Collection) {
		c.ext = ext
	}
}

// WithIsolateErrors skips files that fail to parse or render instead of
// failing the whole query.
func WithIsolateErrors(isolate bool) Option {
	return func(c *Collection) {
		c.isolate = isolate
	}
}

// WithClock sets the reference time used for relative dates.
func WithClock(now func() time.Time) Option {
	return func(c *Collection) {
		c.now = now
	}
}

// WithRand sets the random source used by Random and RandomExcept.
func WithRand(r *rand.Rand) Option {
	return func(c *Collection) {
		var mu sync.Mutex
		c.intn = func(n int) int {
			mu.Lock()
			defer mu.Unlock()
			return r.IntN(n)
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Collection) {
		c.logger = l
	}
}

// New creates a Collection over store, rendering bodies with renderer.
func New(store storage.Provider, renderer render.Renderer, opts ...Option) *Collection {
	c := &Collection{
		store:    store,
		renderer: renderer,
		ext:      DefaultExtension,
		mode:     ModeStrict,
		order:    Order{Direction: Descending},
		now:      time.Now,
		intn:     rand.IntN,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.order.Direction == "" {
		c.order.Direction = Descending
	}
	return c
}

// Ordered returns a copy of c that sorts by o.
func (c *Collection) Ordered(o Order) *Collection {
	cp := *c
	if o.Direction == "" {
		o.Direction = Descending
	}
	cp.order = o
	return &cp
}

// List returns every record, ordered.
func (c *Collection) List(ctx context.Context) ([]models.Record, error) {
	raws, err := NewLoader(c.store, c.renderer, c.ext, c.isolate, c.logger).Load(ctx)
	if err != nil {
		return nil, err
	}

	now := c.now()
	recs := make([]models.Record, 0, len(raws))
	for _, raw := range raws {
		rec, err := assemble(raw, c.mode, now)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	if err := sortRecords(recs, c.order); err != nil {
		return nil, err
	}
	return recs, nil
}

// Get returns the record whose slug matches. With duplicate slugs the first
// record in list order is returned; which one that is is unspecified.
func (c *Collection) Get(ctx context.Context, slug string) (models.Record, error) {
	recs, err := c.List(ctx)
	if err != nil {
		return models.Record{}, err
	}
	for _, r := range recs {
		if r.Slug == slug {
			return r, nil
		}
	}
	return models.Record{}, &apperr.Error{Kind: apperr.ErrNotFound, Path: slug}
}

// Random returns a uniformly chosen record from the full set.
func (c *Collection) Random(ctx context.Context) (models.Record, error) {
	recs, err := c.List(ctx)
	if err != nil {
		return models.Record{}, err
	}
	return c.pick(recs)
}

// RandomExcept returns a uniformly chosen record, never the one with slug
// and never a private one.
func (c *Collection) RandomExcept(ctx context.Context, slug string) (models.Record, error) {
	recs, err := c.List(ctx)
	if err != nil {
		return models.Record{}, err
	}
	eligible := recs[:0]
	for _, r := range recs {
		if r.Slug != slug && !r.IsPrivate() {
			eligible = append(eligible, r)
		}
	}
	return c.pick(eligible)
}

func (c *Collection) pick(recs []models.Record) (models.Record, error) {
	if len(recs) == 0 {
		return models.Record{}, apperr.ErrEmptyResult
	}
	return recs[c.intn(len(recs))], nil
}
