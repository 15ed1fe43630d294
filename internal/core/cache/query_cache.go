// Package cache holds the process-local result cache for area searches.
package cache

import (
	"sync"

	"github.com/trailatlas/trails-api/internal/core/domain"
)

// QueryCache maps a quantized area-search key to the provider payload first
// fetched for it. Entries live for the lifetime of the process: there is no
// eviction, no TTL and no size bound (a known scalability gap, kept
// deliberately).
//
// The mutex protects the map structure only. Concurrent misses on the same
// key are not coalesced: both requests reach the provider and the later Put
// wins. Values are served verbatim once stored.
type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]domain.RouteData
}

// New returns an empty QueryCache. Construct one at process start and hand
// it to the search gateway; nothing else should hold cache state.
func New() *QueryCache {
	return &QueryCache{entries: make(map[string]domain.RouteData)}
}

// Get returns the payload stored under key, or ok=false on a miss. It never
// triggers a provider call.
func (c *QueryCache) Get(key string) (domain.RouteData, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.entries[key]
	return data, ok
}

// Put stores data under key, overwriting any previous value.
func (c *QueryCache) Put(key string, data domain.RouteData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = data
}

// Len reports the number of cached entries.
func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
