package shaping

import (
	"sync"

	"github.com/boergens/fontkit/cache"
)

// DefaultMaxEntries is the shaping cache's default entry bound. There is
// no byte budget: a ShapedText's size is bounded by the input's
// grapheme count, and the cache itself is small.
const DefaultMaxEntries = 1000

// Stats are hits/misses for the shaping cache.
type Stats struct {
	Hits   int64
	Misses int64
}

// Cache is an LRU over Key -> *ShapedText, bounded only by entry count
// (no byte budget, unlike the glyph cache). Reuses cache's LRU container
// rather than reimplementing one.
type Cache struct {
	mu         sync.Mutex
	maxEntries int
	store      cache.EntryLRU[Key, *ShapedText]
	hits       int64
	misses     int64
}

// NewCache creates a Cache bounded by maxEntries (DefaultMaxEntries if
// non-positive).
func NewCache(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Cache{maxEntries: maxEntries, store: cache.NewEntryLRU[Key, *ShapedText]()}
}

// Get returns the cached ShapedText for key, promoting it to
// most-recently-used on a hit.
func (c *Cache) Get(key Key) (*ShapedText, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	text, ok := c.store.Get(key)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return text, ok
}

// Put inserts text under key, evicting the least-recently-used entry if
// the cache is already at its entry bound.
func (c *Cache) Put(key Key, text *ShapedText) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Put(key, text)
	for c.store.Len() > c.maxEntries {
		c.store.RemoveOldest()
	}
}

// StatsSnapshot returns a point-in-time copy of the cache's hit/miss
// counters.
func (c *Cache) StatsSnapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Hits: c.hits, Misses: c.misses}
}
