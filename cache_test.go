package vlist_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-virtual/vlist"
)

func rowKey(i int) vlist.RowKey {
	return vlist.RowKey{Key: fmt.Sprintf("row-%04d", i), Width: 80, Theme: "dark", Generation: 1}
}

func TestRowCacheHitAndMiss(t *testing.T) {
	c := vlist.NewRowCache(10)

	if _, ok := c.Get(rowKey(0)); ok {
		t.Error("empty cache should miss")
	}

	c.Put(rowKey(0), "rendered row 0")
	got, ok := c.Get(rowKey(0))
	if !ok || got != "rendered row 0" {
		t.Errorf("Get = (%q, %v), want hit with the stored value", got, ok)
	}

	m := c.Metrics
	if m.Hits != 1 || m.Misses != 1 {
		t.Errorf("metrics = %d hits %d misses, want 1/1", m.Hits, m.Misses)
	}
	if m.HitRate() != 50 {
		t.Errorf("HitRate() = %v, want 50", m.HitRate())
	}
}

// Any field of the key participates in identity: a different width,
// theme or generation misses.
func TestRowCacheKeyVariants(t *testing.T) {
	c := vlist.NewRowCache(10)
	base := rowKey(0)
	c.Put(base, "base")

	variants := []vlist.RowKey{
		{Key: base.Key, Width: 40, Theme: base.Theme, Generation: base.Generation},
		{Key: base.Key, Width: base.Width, Theme: "light", Generation: base.Generation},
		{Key: base.Key, Width: base.Width, Theme: base.Theme, Generation: 2},
	}
	for _, k := range variants {
		if _, ok := c.Get(k); ok {
			t.Errorf("variant %+v should miss", k)
		}
	}
	if _, ok := c.Get(base); !ok {
		t.Error("exact key should still hit")
	}
}

func TestRowCacheLRUEviction(t *testing.T) {
	c := vlist.NewRowCache(3)
	for i := 0; i < 3; i++ {
		c.Put(rowKey(i), fmt.Sprintf("row %d", i))
	}

	// Touch row 0 so row 1 becomes least recently used
	c.Get(rowKey(0))

	c.Put(rowKey(3), "row 3")
	if _, ok := c.Get(rowKey(1)); ok {
		t.Error("least recently used entry should be evicted")
	}
	if _, ok := c.Get(rowKey(0)); !ok {
		t.Error("recently touched entry should survive")
	}
	if c.Metrics.Evictions != 1 {
		t.Errorf("evictions = %d, want 1", c.Metrics.Evictions)
	}
}

func TestRowCacheByteBudget(t *testing.T) {
	// Budget fits roughly two large rows
	c := vlist.NewRowCacheWithBudget(100, 2500)
	big := strings.Repeat("x", 1000)

	c.Put(rowKey(0), big)
	c.Put(rowKey(1), big)
	c.Put(rowKey(2), big)

	if c.Len() > 2 {
		t.Errorf("Len() = %d, want <= 2 under the byte budget", c.Len())
	}
	if c.ByteSize() > 2500 {
		t.Errorf("ByteSize() = %d, exceeds budget 2500", c.ByteSize())
	}
	if _, ok := c.Get(rowKey(0)); ok {
		t.Error("oldest entry should have been evicted for the budget")
	}
}

func TestRowCacheUpdateExisting(t *testing.T) {
	c := vlist.NewRowCache(10)
	c.Put(rowKey(0), "old")
	c.Put(rowKey(0), "new")

	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after overwriting", c.Len())
	}
	if got, _ := c.Get(rowKey(0)); got != "new" {
		t.Errorf("Get = %q, want %q", got, "new")
	}
}

func TestRowCacheClearKeepsMetrics(t *testing.T) {
	c := vlist.NewRowCache(10)
	c.Put(rowKey(0), "row")
	c.Get(rowKey(0))
	c.Clear()

	if c.Len() != 0 || c.ByteSize() != 0 {
		t.Errorf("cache not empty after Clear: len %d bytes %d", c.Len(), c.ByteSize())
	}
	if c.Metrics.Hits != 1 {
		t.Errorf("metrics lost on Clear: hits = %d, want 1", c.Metrics.Hits)
	}
}
