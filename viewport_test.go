package vlist_test

import (
	"testing"

	"github.com/go-virtual/vlist"
)

func setupViewport(t *testing.T) *vlist.Viewport {
	t.Helper()
	c := mustClipper(t, 32, vlist.Buffer(20))
	vp := vlist.NewViewport(c)
	vp.SetCount(500)
	vp.SetHeight(300)
	return vp
}

func TestViewportScrollClamping(t *testing.T) {
	vp := setupViewport(t)

	vp.SetScroll(-100)
	if vp.Scroll() != 0 {
		t.Errorf("negative scroll: got %v, want 0", vp.Scroll())
	}

	vp.SetScroll(1e9)
	maxScroll := float32(500*32) - 300
	if vp.Scroll() != maxScroll {
		t.Errorf("overscroll: got %v, want %v", vp.Scroll(), maxScroll)
	}

	vp.SetScroll(3200)
	if vp.Scroll() != 3200 {
		t.Errorf("in-range scroll: got %v, want 3200", vp.Scroll())
	}
}

func TestViewportWindowTracksState(t *testing.T) {
	vp := setupViewport(t)

	w := vp.Window()
	if w.Start != 0 || w.End != 30 {
		t.Fatalf("initial window = [%d, %d), want [0, 30)", w.Start, w.End)
	}

	vp.SetScroll(3200)
	w = vp.Window()
	if w.Start != 80 || w.End != 130 {
		t.Fatalf("scrolled window = [%d, %d), want [80, 130)", w.Start, w.End)
	}

	// A taller viewport widens the window
	vp.SetHeight(600)
	w2 := vp.Window()
	if w2.End <= w.End {
		t.Errorf("taller viewport should extend the window: %d -> %d", w.End, w2.End)
	}
}

func TestViewportWindowMemoized(t *testing.T) {
	vp := setupViewport(t)
	vp.SetScroll(3200)

	first := vp.Window()
	for i := 0; i < 5; i++ {
		if got := vp.Window(); got != first {
			t.Fatalf("repeated Window() = %+v, want %+v", got, first)
		}
	}

	// Setting the same values must not change the result
	vp.SetScroll(3200)
	vp.SetHeight(300)
	if got := vp.Window(); got != first {
		t.Errorf("no-op setters changed window: %+v != %+v", got, first)
	}
}

func TestViewportSetCountBumpsGeneration(t *testing.T) {
	vp := setupViewport(t)
	gen := vp.Generation()

	vp.SetCount(500) // same count, still a replacement
	if vp.Generation() != gen+1 {
		t.Errorf("generation = %d, want %d", vp.Generation(), gen+1)
	}

	vp.SetCount(100)
	if vp.Generation() != gen+2 {
		t.Errorf("generation = %d, want %d", vp.Generation(), gen+2)
	}
}

func TestViewportSetCountReclampsScroll(t *testing.T) {
	vp := setupViewport(t)
	vp.SetScroll(15000)

	// Shrink the content below the current offset
	vp.SetCount(20)
	maxScroll := float32(20*32) - 300
	if vp.Scroll() != maxScroll {
		t.Errorf("scroll after shrink = %v, want %v", vp.Scroll(), maxScroll)
	}

	// Shrink below one viewport of content
	vp.SetCount(5)
	if vp.Scroll() != 0 {
		t.Errorf("scroll after deep shrink = %v, want 0", vp.Scroll())
	}
}

func TestViewportNegativeCount(t *testing.T) {
	vp := setupViewport(t)
	vp.SetCount(-5)
	if vp.Count() != 0 {
		t.Errorf("Count() = %d, want 0", vp.Count())
	}
	if w := vp.Window(); w != (vlist.Window{}) {
		t.Errorf("window = %+v, want zero window", w)
	}
}

func TestViewportShrinkHeightReclampsScroll(t *testing.T) {
	c := mustClipper(t, 10)
	vp := vlist.NewViewport(c)
	vp.SetCount(100)
	vp.SetHeight(500)
	vp.SetScroll(500) // max for height 500

	vp.SetHeight(900)
	if vp.Scroll() != 100 {
		t.Errorf("scroll after growing viewport = %v, want 100", vp.Scroll())
	}
}
