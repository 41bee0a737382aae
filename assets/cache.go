package assets

import (
	"context"
	"errors"
	"fmt"
)

// ErrLoadFailed is wrapped by every error reported for a failed fetch.
var ErrLoadFailed = errors.New("asset load failed")

// LoadError reports which URL could not be loaded.
type LoadError struct {
	URL string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.URL, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrLoadFailed, e.Err}
}

// LoadFunc fetches and decodes the resource behind url.
// It runs on its own goroutine and must not touch game state.
type LoadFunc[T any] func(ctx context.Context, url string) (T, error)

type entry[T any] struct {
	value  T
	loaded bool
	err    error
}

type result[T any] struct {
	url   string
	value T
	err   error
}

// Cache memoizes resources by URL and reports when everything requested
// so far has finished loading.
//
// A Cache is not safe for concurrent use; confine it to the game goroutine.
// Fetches run on their own goroutines and only hand results back, which
// Poll or Wait apply on the caller's goroutine.
type Cache[T any] struct {
	ctx       context.Context
	load      LoadFunc[T]
	entries   map[string]*entry[T]
	callbacks []func()
	results   chan result[T]
}

// NewCache creates an empty cache that fetches with load. Cancelling ctx
// abandons fetches that have not been handed back yet.
func NewCache[T any](ctx context.Context, load LoadFunc[T]) *Cache[T] {
	return &Cache[T]{
		ctx:     ctx,
		load:    load,
		entries: make(map[string]*entry[T]),
		results: make(chan result[T], 16),
	}
}

// Load starts fetching every URL that is not already pending or loaded.
// Requesting a known URL again is a no-op.
func (c *Cache[T]) Load(urls ...string) {
	for _, url := range urls {
		if _, ok := c.entries[url]; ok {
			continue
		}
		c.entries[url] = &entry[T]{}
		go c.fetch(url)
	}
}

func (c *Cache[T]) fetch(url string) {
	value, err := c.load(c.ctx, url)
	select {
	case c.results <- result[T]{url: url, value: value, err: err}:
	case <-c.ctx.Done():
	}
}

// Get returns the loaded resource for url. The second result is false while
// the URL is pending, after it failed, or when it was never requested.
func (c *Cache[T]) Get(url string) (T, bool) {
	e, ok := c.entries[url]
	if !ok || !e.loaded {
		var zero T
		return zero, false
	}
	return e.value, true
}

// OnReady registers fn to run each time a completed load leaves the whole
// cache loaded. Callbacks run in registration order on the goroutine calling
// Poll or Wait. Registering on an already ready cache does not run fn.
func (c *Cache[T]) OnReady(fn func()) {
	c.callbacks = append(c.callbacks, fn)
}

// IsReady reports whether every requested URL has finished loading.
// An empty cache is ready.
func (c *Cache[T]) IsReady() bool {
	for _, e := range c.entries {
		if !e.loaded {
			return false
		}
	}
	return true
}

// Len returns the number of URLs ever requested.
func (c *Cache[T]) Len() int {
	return len(c.entries)
}

// Progress returns how many of the requested URLs have loaded.
func (c *Cache[T]) Progress() (loaded, total int) {
	for _, e := range c.entries {
		if e.loaded {
			loaded++
		}
	}
	return loaded, len(c.entries)
}

// Poll applies every fetch that has completed since the last call without
// blocking. Failed fetches are returned as *LoadError values.
func (c *Cache[T]) Poll() error {
	var errs []error
	for {
		select {
		case r := <-c.results:
			if err := c.apply(r); err != nil {
				errs = append(errs, err)
			}
		default:
			return errors.Join(errs...)
		}
	}
}

// Wait blocks until the cache is ready, a fetch fails, or ctx is done.
func (c *Cache[T]) Wait(ctx context.Context) error {
	for !c.IsReady() {
		if err := c.firstFailure(); err != nil {
			return err
		}
		select {
		case r := <-c.results:
			if err := c.apply(r); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (c *Cache[T]) apply(r result[T]) error {
	e := c.entries[r.url]
	if r.err != nil {
		e.err = r.err
		return &LoadError{URL: r.url, Err: r.err}
	}

	e.value = r.value
	e.loaded = true

	if c.IsReady() {
		for _, fn := range c.callbacks {
			fn()
		}
	}
	return nil
}

func (c *Cache[T]) firstFailure() error {
	for url, e := range c.entries {
		if e.err != nil {
			return &LoadError{URL: url, Err: e.err}
		}
	}
	return nil
}
