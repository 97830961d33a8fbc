package cache

import (
	"sync"

	"golang.org/x/image/math/fixed"
)

const (
	DefaultMaxEntries = 10_000
	DefaultMaxBytes   = 100 * 1024 * 1024
)

// GlyphKey is the glyph cache's key: a face id, glyph id, 26.6
// fixed-point size, and render mode. Using the 26.6 quantization (rather
// than a raw float) makes two sizes compare equal iff they'd rasterize
// identically under the backend's own grid, and sidesteps NaN/float-
// equality pitfalls entirely.
type GlyphKey struct {
	FaceID  int
	GlyphID uint16
	Size26  fixed.Int26_6
	Mode    Format
}

// NewGlyphKey quantizes sizePx to 26.6 fixed point so that two pixel
// sizes which would rasterize identically share a cache entry.
func NewGlyphKey(faceID int, glyphID uint16, sizePx float64, mode Format) GlyphKey {
	return GlyphKey{
		FaceID:  faceID,
		GlyphID: glyphID,
		Size26:  fixed.Int26_6(sizePx*64 + 0.5),
		Mode:    mode,
	}
}

// Stats are the glyph cache's exposed counters. clear() resets Entries
// and Bytes but never Hits/Misses/Evictions.
type Stats struct {
	Entries    int
	Hits       int64
	Misses     int64
	Evictions  int64
	Bytes      int64
	MaxEntries int
	MaxBytes   int64
}

// HitRate returns Hits/(Hits+Misses), or 0 if both are zero.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// GlyphCache memoizes rasterize(face, glyph, size, mode) -> GlyphBitmap,
// bounded by both an entry count and a byte budget, evicting
// least-recently-used entries to stay under either.
type GlyphCache struct {
	mu         sync.Mutex
	store      EntryLRU[GlyphKey, GlyphBitmap]
	bytes      int64
	maxEntries int
	maxBytes   int64
	hits       int64
	misses     int64
	evictions  int64
}

// NewGlyphCache creates a GlyphCache bounded by maxEntries and maxBytes.
// A non-positive bound falls back to the documented default.
func NewGlyphCache(maxEntries int, maxBytes int64) *GlyphCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &GlyphCache{
		store:      NewEntryLRU[GlyphKey, GlyphBitmap](),
		maxEntries: maxEntries,
		maxBytes:   maxBytes,
	}
}

// Get looks up key, promoting it to most-recently-used on a hit and
// incrementing the appropriate counter either way.
func (c *GlyphCache) Get(key GlyphKey) (GlyphBitmap, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	bmp, ok := c.store.Get(key)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return bmp, ok
}

// Put inserts bitmap under key, running the cache's admission/eviction
// protocol:
//
//  1. If admitting bitmap would push bytes over maxBytes, evict LRU
//     entries (decrementing bytes by each evicted entry's size) until
//     there's room or the store is empty.
//  2. Insert the new key. If insertion itself overflows maxEntries, evict
//     one more entry.
//  3. Add the new entry's size to bytes.
func (c *GlyphCache) Put(key GlyphKey, bitmap GlyphBitmap) {
	c.mu.Lock()
	defer c.mu.Unlock()

	size := int64(len(bitmap.Data))

	for c.bytes+size > c.maxBytes && c.store.Len() > 0 {
		c.evictOldestLocked()
	}

	// If key already exists, replacing it does not change entry count,
	// but does change resident bytes; account for the old size first.
	if old, existed := c.store.Get(key); existed {
		c.bytes -= int64(len(old.Data))
	}

	c.store.Put(key, bitmap)

	if c.store.Len() > c.maxEntries {
		// Don't evict the entry we just inserted — RemoveOldest pops the
		// true LRU tail, which is only the new key if the store holds
		// nothing else.
		_, evictedBitmap, ok := c.store.RemoveOldest()
		if ok {
			c.bytes -= int64(len(evictedBitmap.Data))
			c.evictions++
		}
	}

	c.bytes += size
}

func (c *GlyphCache) evictOldestLocked() {
	_, bmp, ok := c.store.RemoveOldest()
	if !ok {
		return
	}
	c.bytes -= int64(len(bmp.Data))
	c.evictions++
}

// Clear empties the cache and zeroes the resident byte counter, without
// resetting Hits/Misses/Evictions.
func (c *GlyphCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Clear()
	c.bytes = 0
}

// StatsSnapshot returns a point-in-time copy of the cache's counters.
func (c *GlyphCache) StatsSnapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Entries:    c.store.Len(),
		Hits:       c.hits,
		Misses:     c.misses,
		Evictions:  c.evictions,
		Bytes:      c.bytes,
		MaxEntries: c.maxEntries,
		MaxBytes:   c.maxBytes,
	}
}
