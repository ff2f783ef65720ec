// Package fontcache keeps the most recently fetched font payload so that
// rasterizing requests do not download it again.
package fontcache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// FetchFunc retrieves a font payload.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

const (
	// DefaultTimeout bounds a single fetch, independent of the caller.
	DefaultTimeout = 15 * time.Second
	// DefaultFailureTTL is how long a failed URL is answered with nil
	// before it is tried again.
	DefaultFailureTTL = 5 * time.Minute
)

// Cache holds one font payload keyed by its source URL. Concurrent
// lookups of the same URL share a single in-flight fetch. The last URL
// that failed is not retried until its failure expires.
type Cache struct {
	fetch      FetchFunc
	timeout    time.Duration
	failureTTL time.Duration
	now        func() time.Time
	group      singleflight.Group

	mu        sync.RWMutex
	url       string
	data      []byte
	failedURL string
	failedAt  time.Time
}

// New returns an empty cache backed by fetch.
func New(fetch FetchFunc) *Cache {
	return &Cache{
		fetch:      fetch,
		timeout:    DefaultTimeout,
		failureTTL: DefaultFailureTTL,
		now:        time.Now,
	}
}

// WithTimeout sets the per-fetch timeout.
func (c *Cache) WithTimeout(d time.Duration) *Cache {
	c.timeout = d
	return c
}

// WithFailureTTL sets how long a failed URL is remembered. Zero disables it.
func (c *Cache) WithFailureTTL(d time.Duration) *Cache {
	c.failureTTL = d
	return c
}

// Get returns the payload for url, fetching it when it is not the cached
// entry. It returns nil when url is empty or the fetch fails; callers
// then render without an embedded font.
func (c *Cache) Get(ctx context.Context, url string) []byte {
	if url == "" {
		return nil
	}
	if data, ok := c.lookup(url); ok {
		return data
	}
	if c.recentlyFailed(url) {
		return nil
	}

	ch := c.group.DoChan(url, func() (interface{}, error) {
		if data, ok := c.lookup(url); ok {
			return data, nil
		}
		// Other requests may be waiting on this fetch; one caller going
		// away must not cancel it for all of them.
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		data, err := c.fetch(fctx, url)
		if err != nil {
			c.storeFailure(url)
			return nil, err
		}
		c.store(url, data)
		return data, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			slog.Warn("font fetch failed, continuing without embedded font", "url", url, "error", res.Err)
			return nil
		}
		return res.Val.([]byte)
	case <-ctx.Done():
		return nil
	}
}

// Warm fetches url in the background so the first request finds it cached.
func (c *Cache) Warm(url string) {
	go c.Get(context.Background(), url)
}

func (c *Cache) lookup(url string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.data != nil && c.url == url {
		return c.data, true
	}
	return nil, false
}

func (c *Cache) store(url string, data []byte) {
	c.mu.Lock()
	c.url, c.data = url, data
	if c.failedURL == url {
		c.failedURL = ""
	}
	c.mu.Unlock()
}

func (c *Cache) recentlyFailed(url string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.failedURL == url && c.now().Sub(c.failedAt) < c.failureTTL
}

func (c *Cache) storeFailure(url string) {
	c.mu.Lock()
	c.failedURL, c.failedAt = url, c.now()
	c.mu.Unlock()
}
