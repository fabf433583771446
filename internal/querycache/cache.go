// Package querycache is the console's client-side read cache. Reads are
// keyed by resource plus serialized parameters, concurrent identical
// reads collapse into one network call, and mutations invalidate whole
// resource prefixes so dependent reads refetch.
package querycache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// FetchFunc loads the value for a key from the backend.
type FetchFunc func(ctx context.Context) (interface{}, error)

type entry struct {
	value    interface{}
	storedAt time.Time
}

// Cache holds fetched responses until they go stale or a mutation
// invalidates them. There is no size bound; entry counts stay small for
// a console workload.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	group   singleflight.Group

	now func() time.Time
}

// New creates a cache whose entries go stale after ttl.
func New(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Key builds a cache key from a resource name and its parameters. Equal
// parameters always produce equal keys.
func Key(resource string, params interface{}) string {
	if params == nil {
		return resource
	}
	data, err := json.Marshal(params)
	if err != nil {
		return resource
	}
	return resource + "?" + string(data)
}

// Get returns the cached value for key, fetching it when absent or
// stale. Concurrent calls for the same key share one fetch; errors are
// never cached.
func (c *Cache) Get(ctx context.Context, key string, fetch FetchFunc) (interface{}, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Sub(e.storedAt) < c.ttl {
		c.mu.Unlock()
		return e.value, nil
	}
	c.mu.Unlock()

	value, err, _ := c.group.Do(key, func() (interface{}, error) {
		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = entry{value: value, storedAt: c.now()}
		c.mu.Unlock()
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// InvalidatePrefix drops every entry whose key starts with prefix. The
// next Get for those keys refetches.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Invalidate drops a single entry.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
