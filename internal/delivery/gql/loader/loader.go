// Package loader batches and caches keyed lookups issued while a single GraphQL
// request executes.
//
// A Loader collects every key registered through Load or LoadMany into the
// current batch window. The window closes the first time any Thunk belonging to
// it is forced: the loader then calls its BatchFunc once with the deduplicated
// keys, in first-seen order, and hands each waiter the row stored under its own
// key. Results stay cached for the lifetime of the Loader, which must never
// outlive the request that created it.
package loader

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Thunk yields the value registered for a key. Forcing it may dispatch a batch.
type Thunk[V any] func() (V, error)

// BatchFunc fetches every key in one round trip. Keys absent from the returned
// map resolve to the zero value of V without an error.
type BatchFunc[K comparable, V any] func(ctx context.Context, keys []K) (map[K]V, error)

// Option configures a Loader.
type Option func(*options)

type options struct {
	name     string
	maxBatch int
	logger   *slog.Logger
}

// WithName labels the loader in logs and errors.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithMaxBatch caps the number of keys per BatchFunc call. Zero or less means unbounded.
func WithMaxBatch(n int) Option {
	return func(o *options) {
		o.maxBatch = n
	}
}

// WithLogger sets the logger used for batch dispatch records.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Loader deduplicates, batches and caches lookups of V by K.
type Loader[K comparable, V any] struct {
	batchFn BatchFunc[K, V]
	opts    options

	mu      sync.Mutex
	cache   map[K]*entry[K, V]
	current *batch[K, V]
	pending []*batch[K, V]
}

type batch[K comparable, V any] struct {
	ctx     context.Context
	keys    []K
	entries []*entry[K, V]
	once    sync.Once
}

type entry[K comparable, V any] struct {
	batch *batch[K, V] // nil for primed entries
	value V
	err   error
}

// New creates a Loader around batchFn.
func New[K comparable, V any](batchFn BatchFunc[K, V], opts ...Option) *Loader[K, V] {
	o := options{name: "loader"}
	for _, opt := range opts {
		opt(&o)
	}

	return &Loader[K, V]{
		batchFn: batchFn,
		opts:    o,
		cache:   make(map[K]*entry[K, V]),
	}
}

// Load registers key in the current batch window, or reuses the cached entry
// when the key was seen before, and returns a Thunk for its value.
func (l *Loader[K, V]) Load(ctx context.Context, key K) Thunk[V] {
	l.mu.Lock()
	e, ok := l.cache[key]
	if !ok {
		e = l.register(ctx, key)
	}
	l.mu.Unlock()

	return func() (V, error) {
		return l.resolve(e)
	}
}

// LoadMany registers every key and returns a Thunk yielding values in key order.
// The first failed key's error is returned.
func (l *Loader[K, V]) LoadMany(ctx context.Context, keys []K) Thunk[[]V] {
	l.mu.Lock()
	entries := make([]*entry[K, V], 0, len(keys))
	for _, key := range keys {
		e, ok := l.cache[key]
		if !ok {
			e = l.register(ctx, key)
		}
		entries = append(entries, e)
	}
	l.mu.Unlock()

	return func() ([]V, error) {
		values := make([]V, 0, len(entries))
		for _, e := range entries {
			value, err := l.resolve(e)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}

		return values, nil
	}
}

// Prime stores value for key unless the key is already cached.
func (l *Loader[K, V]) Prime(key K, value V) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.cache[key]; ok {
		return
	}
	l.cache[key] = &entry[K, V]{value: value}
}

// Prefetch registers keys in the current batch window without handing out a
// Thunk. Cached keys are skipped. A later Load or LoadMany of the same keys
// joins the window.
func (l *Loader[K, V]) Prefetch(ctx context.Context, keys []K) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, key := range keys {
		if _, ok := l.cache[key]; !ok {
			l.register(ctx, key)
		}
	}
}

// Flush dispatches every open batch window without waiting for one of its
// thunks to be forced.
func (l *Loader[K, V]) Flush() {
	l.mu.Lock()
	pending := slices.Clone(l.pending)
	l.mu.Unlock()

	for _, b := range pending {
		b.once.Do(func() {
			l.dispatch(b)
		})
	}
}

// Clear drops key from the cache so the next Load fetches it again.
func (l *Loader[K, V]) Clear(key K) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.cache, key)
}

// register must be called with l.mu held.
func (l *Loader[K, V]) register(ctx context.Context, key K) *entry[K, V] {
	if l.current == nil || (l.opts.maxBatch > 0 && len(l.current.keys) >= l.opts.maxBatch) {
		l.current = &batch[K, V]{ctx: ctx}
		l.pending = append(l.pending, l.current)
	}

	e := &entry[K, V]{batch: l.current}
	l.current.keys = append(l.current.keys, key)
	l.current.entries = append(l.current.entries, e)
	l.cache[key] = e

	return e
}

func (l *Loader[K, V]) resolve(e *entry[K, V]) (V, error) {
	if b := e.batch; b != nil {
		b.once.Do(func() {
			l.dispatch(b)
		})
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return e.value, e.err
}

// dispatch closes the batch window and fans the fetched rows out to its entries.
func (l *Loader[K, V]) dispatch(b *batch[K, V]) {
	l.mu.Lock()
	if l.current == b {
		l.current = nil
	}
	l.pending = slices.DeleteFunc(l.pending, func(p *batch[K, V]) bool { return p == b })
	keys := b.keys
	l.mu.Unlock()

	start := time.Now()
	results, err := l.fetch(b.ctx, keys)

	if l.opts.logger != nil {
		l.opts.logger.LogAttrs(b.ctx, slog.LevelDebug, "Loader batch dispatched",
			slog.String("loader", l.opts.name),
			slog.Int("keys", len(keys)),
			slog.Int("rows", len(results)),
			slog.Duration("elapsed", time.Since(start)),
			slog.Bool("failed", err != nil),
		)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range b.entries {
		if err != nil {
			e.err = err

			continue
		}
		e.value = results[keys[i]]
	}
}

func (l *Loader[K, V]) fetch(ctx context.Context, keys []K) (results map[K]V, err error) {
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = errors.Errorf("%s: batch function panicked: %v", l.opts.name, r)
		}
	}()

	results, err = l.batchFn(ctx, keys)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: batch load failed", l.opts.name)
	}

	return results, nil
}
