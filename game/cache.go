package game

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/sheikhrachel/go-life-rle/model"
)

// Cache memoizes simulation results by input world and generation count.
// Concurrent requests for the same key share a single computation.
type Cache struct {
	mu         sync.Mutex
	maxEntries int
	entries    map[string]cacheEntry
	group      singleflight.Group
}

type cacheEntry struct {
	input  model.World
	output model.World
}

// NewCache keeps at most maxEntries results; 0 means unbounded
func NewCache(maxEntries int) *Cache {
	return &Cache{
		maxEntries: maxEntries,
		entries:    make(map[string]cacheEntry),
	}
}

// Get returns the result for (w, generations), calling compute on a miss.
// hit reports whether the result came from the cache.
func (c *Cache) Get(w model.World, generations int, compute func() model.World) (result model.World, hit bool) {
	key := w.Hash() + "/" + strconv.Itoa(generations)

	if out, ok := c.lookup(key, w); ok {
		return out, true
	}

	v, _, _ := c.group.Do(key, func() (interface{}, error) {
		e := cacheEntry{input: w, output: compute()}
		c.store(key, e)
		return e, nil
	})

	// A colliding hash may have shared another input's computation
	if e := v.(cacheEntry); e.input.Equal(w) {
		return e.output, false
	}
	return compute(), false
}

func (c *Cache) lookup(key string, w model.World) (model.World, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.input.Equal(w) {
		return model.World{}, false
	}
	return e.output, true
}

func (c *Cache) store(key string, e cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		// Evict an arbitrary entry
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[key] = e
}

// Len returns the number of cached results
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
