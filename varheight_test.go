package vlist_test

import (
	"errors"
	"testing"

	"github.com/go-virtual/vlist"
)

func mustVarClipper(t *testing.T, heights []float32, opts ...vlist.Option) *vlist.VarClipper {
	t.Helper()
	c, err := vlist.NewVarClipper(heights, opts...)
	if err != nil {
		t.Fatalf("NewVarClipper returned error: %v", err)
	}
	return c
}

func repeatHeights(h float32, n int) []float32 {
	heights := make([]float32, n)
	for i := range heights {
		heights[i] = h
	}
	return heights
}

func TestVarClipperValidation(t *testing.T) {
	for _, heights := range [][]float32{
		{10, 0, 10},
		{10, -5, 10},
	} {
		_, err := vlist.NewVarClipper(heights)
		if !errors.Is(err, vlist.ErrInvalidConfig) {
			t.Errorf("heights %v: error %v is not ErrInvalidConfig", heights, err)
		}
	}

	_, err := vlist.NewVarClipper([]float32{10}, vlist.Buffer(-1))
	if !errors.Is(err, vlist.ErrInvalidConfig) {
		t.Errorf("negative buffer: error %v is not ErrInvalidConfig", err)
	}
}

// With uniform heights the variable-height window must match the
// fixed-height clipper exactly.
func TestVarClipperMatchesUniformClipper(t *testing.T) {
	const n = 200
	fixed := mustClipper(t, 32, vlist.Buffer(5))
	variable := mustVarClipper(t, repeatHeights(32, n), vlist.Buffer(5))

	for scrollY := float32(0); scrollY <= fixed.MaxScroll(n, 300); scrollY += 41 {
		fw := fixed.Window(n, scrollY, 300)
		vw := variable.Window(scrollY, 300)
		if fw != vw {
			t.Fatalf("scroll %v: variable %+v != fixed %+v", scrollY, vw, fw)
		}
	}
}

func TestVarClipperWindowMixedHeights(t *testing.T) {
	// Offsets: 0, 20, 70, 80, 180, 210
	c := mustVarClipper(t, []float32{20, 50, 10, 100, 30})

	tests := []struct {
		name      string
		scrollY   float32
		viewportH float32
		wantStart int
		wantEnd   int
	}{
		{name: "top", scrollY: 0, viewportH: 60, wantStart: 0, wantEnd: 2},
		{name: "straddles short row", scrollY: 65, viewportH: 20, wantStart: 1, wantEnd: 4},
		{name: "inside tall row", scrollY: 100, viewportH: 50, wantStart: 3, wantEnd: 4},
		{name: "bottom", scrollY: 180, viewportH: 30, wantStart: 4, wantEnd: 5},
		{name: "exact row boundary", scrollY: 20, viewportH: 50, wantStart: 1, wantEnd: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := c.Window(tt.scrollY, tt.viewportH)
			if w.Start != tt.wantStart || w.End != tt.wantEnd {
				t.Errorf("Window(%v, %v) = [%d, %d), want [%d, %d)",
					tt.scrollY, tt.viewportH, w.Start, w.End, tt.wantStart, tt.wantEnd)
			}
			if want := c.ItemTop(w.Start); w.OffsetTop != want {
				t.Errorf("offsetTop = %v, want %v", w.OffsetTop, want)
			}
			if w.TotalHeight != 210 {
				t.Errorf("totalHeight = %v, want 210", w.TotalHeight)
			}
		})
	}
}

func TestVarClipperSetHeightShiftsOffsets(t *testing.T) {
	c := mustVarClipper(t, []float32{20, 50, 10, 100, 30})

	if err := c.SetHeight(1, 80); err != nil {
		t.Fatalf("SetHeight returned error: %v", err)
	}

	if got := c.ItemHeight(1); got != 80 {
		t.Errorf("ItemHeight(1) = %v, want 80", got)
	}
	if got := c.ItemTop(2); got != 100 {
		t.Errorf("ItemTop(2) = %v, want 100", got)
	}
	if got := c.TotalHeight(); got != 240 {
		t.Errorf("TotalHeight() = %v, want 240", got)
	}

	// Earlier offsets are untouched
	if got := c.ItemTop(1); got != 20 {
		t.Errorf("ItemTop(1) = %v, want 20", got)
	}
}

func TestVarClipperSetHeightValidation(t *testing.T) {
	c := mustVarClipper(t, []float32{20, 50})

	if err := c.SetHeight(5, 10); !errors.Is(err, vlist.ErrInvalidConfig) {
		t.Errorf("out of range index: error %v is not ErrInvalidConfig", err)
	}
	if err := c.SetHeight(0, 0); !errors.Is(err, vlist.ErrInvalidConfig) {
		t.Errorf("zero height: error %v is not ErrInvalidConfig", err)
	}
}

func TestVarClipperWindowInvariants(t *testing.T) {
	heights := make([]float32, 500)
	for i := range heights {
		heights[i] = float32(10 + (i*7)%40)
	}
	c := mustVarClipper(t, heights, vlist.Buffer(3))
	n := c.Len()

	for scrollY := float32(0); scrollY <= c.MaxScroll(250); scrollY += 53 {
		w := c.Window(scrollY, 250)

		if w.Start < 0 || w.End < w.Start || w.End > n {
			t.Fatalf("scroll %v: window [%d, %d) out of bounds", scrollY, w.Start, w.End)
		}

		// Rows outside the window plus buffer must be fully outside
		// the viewport.
		bottom := scrollY + 250
		if w.Start > 0 {
			inner := w.Start + 3 // first row inside the unbuffered range
			if inner < n && c.ItemTop(inner)+c.ItemHeight(inner) <= scrollY {
				t.Fatalf("scroll %v: row %d is above the viewport but inside the range", scrollY, inner)
			}
		}
		if w.End < n && c.ItemTop(w.End) < bottom-float32(3)*50 {
			// Loose check: the first excluded row cannot start far
			// above the viewport bottom (3 buffer rows of max height).
			t.Fatalf("scroll %v: row %d excluded but near-visible", scrollY, w.End)
		}
	}
}

func TestVarClipperScrollToItem(t *testing.T) {
	// Offsets: 0, 20, 70, 80, 180, 210
	c := mustVarClipper(t, []float32{20, 50, 10, 100, 30})

	if got := c.ScrollToItem(3, 0, 50); got != 130 {
		t.Errorf("ScrollToItem(3) from top = %v, want 130", got)
	}
	if got := c.ScrollToItem(1, 100, 50); got != 20 {
		t.Errorf("ScrollToItem(1) from below = %v, want 20", got)
	}
	if got := c.ScrollToItem(2, 60, 50); got != 60 {
		t.Errorf("ScrollToItem of a visible item = %v, want unchanged 60", got)
	}
	if got := c.ScrollToItem(99, 60, 50); got != 60 {
		t.Errorf("ScrollToItem out of range = %v, want unchanged 60", got)
	}
}

func TestVarClipperReplace(t *testing.T) {
	c := mustVarClipper(t, []float32{20, 50})

	if err := c.Replace([]float32{10, 10, 10}); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if c.Len() != 3 || c.TotalHeight() != 30 {
		t.Errorf("after Replace: len %d total %v, want 3 and 30", c.Len(), c.TotalHeight())
	}

	// A failed Replace keeps the old offsets
	if err := c.Replace([]float32{10, -1}); err == nil {
		t.Fatal("Replace with invalid height should fail")
	}
	if c.Len() != 3 {
		t.Errorf("failed Replace changed state: len %d, want 3", c.Len())
	}
}
