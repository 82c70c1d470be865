package vlist

import "container/list"

// RowCache is a bounded LRU cache for formatted row strings. Laying
// out a row (formatting, truncation, styling) can dwarf the window
// arithmetic for wide lists, and a sliding window re-renders mostly
// the same rows every frame, so cached rows turn scrolling into map
// hits.
//
// Entries are keyed by item key plus everything that changes a row's
// rendered form: the layout width, the theme name, and the snapshot
// generation. A width or theme change therefore misses naturally, and
// Replace-d items can never serve stale text.
//
// Both an entry-count and a byte budget bound the cache; eviction
// runs until both hold. Like the rest of the package it follows the
// single-writer discipline and needs no locking.
type RowCache struct {
	capacity    int
	maxBytes    int64
	currentSize int64
	cache       map[RowKey]*list.Element
	lru         *list.List

	// Metrics tracks hit/miss/eviction counts for tuning.
	Metrics CacheMetrics
}

// RowKey identifies one rendered row variant.
type RowKey struct {
	Key        string // Stable item key
	Width      int    // Layout width the row was formatted for
	Theme      string // Theme identifier
	Generation uint64 // Snapshot generation the item came from
}

// CacheMetrics tracks cache performance statistics.
type CacheMetrics struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns the hit rate as a percentage (0-100), or 0 before
// any request.
func (m CacheMetrics) HitRate() float64 {
	total := m.Hits + m.Misses
	if total == 0 {
		return 0
	}
	return float64(m.Hits) / float64(total) * 100
}

type rowEntry struct {
	key   RowKey
	value string
	size  int64
}

// DefaultMaxCacheBytes bounds cache memory when no explicit budget is
// given (~4MB).
const DefaultMaxCacheBytes = 4 * 1024 * 1024

// NewRowCache creates a cache holding at most capacity rows within
// DefaultMaxCacheBytes.
func NewRowCache(capacity int) *RowCache {
	return NewRowCacheWithBudget(capacity, DefaultMaxCacheBytes)
}

// NewRowCacheWithBudget creates a cache bounded by both an entry
// count and a byte budget.
func NewRowCacheWithBudget(capacity int, maxBytes int64) *RowCache {
	return &RowCache{
		capacity: capacity,
		maxBytes: maxBytes,
		cache:    make(map[RowKey]*list.Element),
		lru:      list.New(),
	}
}

// Get returns the cached row for key, or ("", false) on a miss.
func (c *RowCache) Get(key RowKey) (string, bool) {
	if elem, ok := c.cache[key]; ok {
		c.lru.MoveToFront(elem)
		c.Metrics.Hits++
		return elem.Value.(*rowEntry).value, true
	}
	c.Metrics.Misses++
	return "", false
}

// Put stores a rendered row, evicting least-recently-used entries
// until both budgets hold.
func (c *RowCache) Put(key RowKey, value string) {
	size := entrySize(key, value)

	if elem, ok := c.cache[key]; ok {
		c.lru.MoveToFront(elem)
		e := elem.Value.(*rowEntry)
		c.currentSize += size - e.size
		e.value = value
		e.size = size
		return
	}

	for c.lru.Len() >= c.capacity || (c.maxBytes > 0 && c.currentSize+size > c.maxBytes) {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		e := oldest.Value.(*rowEntry)
		delete(c.cache, e.key)
		c.lru.Remove(oldest)
		c.currentSize -= e.size
		c.Metrics.Evictions++
	}

	e := &rowEntry{key: key, value: value, size: size}
	c.cache[key] = c.lru.PushFront(e)
	c.currentSize += size
}

// Clear empties the cache, preserving metrics.
func (c *RowCache) Clear() {
	c.cache = make(map[RowKey]*list.Element)
	c.lru.Init()
	c.currentSize = 0
}

// Len returns the number of cached rows.
func (c *RowCache) Len() int {
	return c.lru.Len()
}

// ByteSize returns the estimated memory held by cached rows.
func (c *RowCache) ByteSize() int64 {
	return c.currentSize
}

// entrySize estimates the memory footprint of one entry: the value,
// the string fields of the key, and a fixed overhead for the rest.
func entrySize(key RowKey, value string) int64 {
	return int64(len(value)) + int64(len(key.Key)) + int64(len(key.Theme)) + 48
}
