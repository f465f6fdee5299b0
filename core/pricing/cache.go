// Package pricing - Per-run price cache
package pricing

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes catalog responses for the lifetime of one estimation run.
// The key is the exact (service code, sorted filter list) tuple; there is
// no eviction and the cache is discarded with the run. Only non-empty
// results are cached, so a later identical query after a transport failure
// or a genuine miss re-attempts the lookup.
//
// A run may parallelize per-node lookups; concurrent queries for the same
// key share one in-flight catalog call instead of issuing duplicates.
type Cache struct {
	catalog Catalog

	mu      sync.RWMutex
	entries map[string][]PriceRecord
	group   singleflight.Group
}

// NewCache wraps a catalog with a run-scoped memo
func NewCache(catalog Catalog) *Cache {
	return &Cache{
		catalog: catalog,
		entries: make(map[string][]PriceRecord),
	}
}

// Query implements Catalog
func (c *Cache) Query(ctx context.Context, serviceCode string, filters []Filter) []PriceRecord {
	key := CacheKey(serviceCode, filters)

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	result, _, _ := c.group.Do(key, func() (interface{}, error) {
		records := c.catalog.Query(ctx, serviceCode, filters)
		if len(records) > 0 {
			c.mu.Lock()
			c.entries[key] = records
			c.mu.Unlock()
		}
		return records, nil
	})

	records, _ := result.([]PriceRecord)
	return records
}

// Len reports how many distinct queries are memoized
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
