package cache

import "testing"

func bmp(size int) GlyphBitmap {
	return GlyphBitmap{Data: make([]byte, size)}
}

func TestGlyphCacheEntryCountEviction(t *testing.T) {
	c := NewGlyphCache(3, 300)

	c.Put(GlyphKey{GlyphID: 1}, bmp(100))
	c.Put(GlyphKey{GlyphID: 2}, bmp(100))
	c.Put(GlyphKey{GlyphID: 3}, bmp(100))
	c.Put(GlyphKey{GlyphID: 4}, bmp(100))

	stats := c.StatsSnapshot()
	if stats.Bytes != 300 {
		t.Errorf("bytes = %d, want 300", stats.Bytes)
	}
	if stats.Evictions != 1 {
		t.Errorf("evictions = %d, want 1", stats.Evictions)
	}
	if stats.Entries != 3 {
		t.Errorf("entries = %d, want 3", stats.Entries)
	}

	if _, ok := c.Get(GlyphKey{GlyphID: 1}); ok {
		t.Error("glyph 1 should have been evicted")
	}
	for _, id := range []uint16{2, 3, 4} {
		if _, ok := c.Get(GlyphKey{GlyphID: id}); !ok {
			t.Errorf("glyph %d should still be resident", id)
		}
	}
}

func TestGlyphCacheByteBudgetEviction(t *testing.T) {
	c := NewGlyphCache(10, 200)

	c.Put(GlyphKey{GlyphID: 1}, bmp(90))
	c.Put(GlyphKey{GlyphID: 2}, bmp(90))
	c.Put(GlyphKey{GlyphID: 3}, bmp(90))

	stats := c.StatsSnapshot()
	if stats.Bytes != 180 {
		t.Errorf("bytes = %d, want 180", stats.Bytes)
	}
	if stats.Evictions != 1 {
		t.Errorf("evictions = %d, want 1", stats.Evictions)
	}
	if _, ok := c.Get(GlyphKey{GlyphID: 1}); ok {
		t.Error("glyph 1 should have been evicted")
	}
}

func TestLRUOrdering(t *testing.T) {
	l := NewEntryLRU[int, int]()

	l.Put(1, 1) // A
	l.Put(2, 2) // B
	l.Get(1)    // touch A
	l.Put(3, 3) // C

	// With a bound of 2, inserting C should evict the true LRU (B), not A.
	for l.Len() > 2 {
		l.RemoveOldest()
	}

	if _, ok := l.Get(1); !ok {
		t.Error("A should still be resident")
	}
	if _, ok := l.Get(3); !ok {
		t.Error("C should still be resident")
	}
	if _, ok := l.Get(2); ok {
		t.Error("B should have been evicted")
	}
}

func TestGlyphCacheHitMissCounters(t *testing.T) {
	c := NewGlyphCache(10, 1000)
	c.Put(GlyphKey{GlyphID: 1}, bmp(10))

	c.Get(GlyphKey{GlyphID: 1})
	c.Get(GlyphKey{GlyphID: 2})

	stats := c.StatsSnapshot()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("hits=%d misses=%d, want 1,1", stats.Hits, stats.Misses)
	}
	if stats.HitRate() != 0.5 {
		t.Errorf("hit rate = %v, want 0.5", stats.HitRate())
	}
}

func TestGlyphCacheClearPreservesCounters(t *testing.T) {
	c := NewGlyphCache(10, 1000)
	c.Put(GlyphKey{GlyphID: 1}, bmp(10))
	c.Get(GlyphKey{GlyphID: 1})
	c.Get(GlyphKey{GlyphID: 2})

	c.Clear()

	stats := c.StatsSnapshot()
	if stats.Entries != 0 || stats.Bytes != 0 {
		t.Errorf("clear should zero entries/bytes, got %+v", stats)
	}
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("clear should not reset hit/miss counters, got %+v", stats)
	}
}
