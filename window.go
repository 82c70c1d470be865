package vlist

import (
	"math"

	"github.com/klev-dev/kleverr"
)

// Window is the materialized slice of a virtual list: the half-open
// index range [Start, End) that must be rendered, the pixel offset at
// which the range begins inside the virtual content, and the height
// the virtual content would have if every item were rendered.
//
// A Window is a value; it is recomputed and replaced whole, never
// mutated, so a consumer can never observe a half-updated range.
type Window struct {
	Start       int     // First materialized index (inclusive)
	End         int     // Last materialized index (exclusive)
	OffsetTop   float32 // Pixel offset of Start within the virtual content
	TotalHeight float32 // Full virtual content height (itemCount * itemHeight)
}

// Len returns the number of materialized items.
func (w Window) Len() int {
	return w.End - w.Start
}

// Contains reports whether index i falls inside the materialized range.
func (w Window) Contains(i int) bool {
	return i >= w.Start && i < w.End
}

// Clipper computes the materialized window of a fixed-height list from
// the current scroll position. It is stateless after construction:
// Window is a pure function of its arguments, cheap enough to call on
// every scroll notification (O(1), no allocation).
//
// Usage:
//
//	clip, err := NewClipper(32, Buffer(20))
//	if err != nil { ... }
//	win := clip.Window(len(items), scrollY, viewportHeight)
//	for i := win.Start; i < win.End; i++ {
//	    y := win.OffsetTop + float32(i-win.Start)*clip.ItemHeight()
//	    // Draw items[i] at y
//	}
type Clipper struct {
	itemHeight float32
	buffer     int
}

// NewClipper creates a clipper for rows of the given fixed pixel
// height. A non-positive item height or a negative buffer is a
// configuration error and is reported here, at setup, rather than
// surfacing as a division by zero on the first scroll.
func NewClipper(itemHeight float32, opts ...Option) (*Clipper, error) {
	if itemHeight <= 0 {
		return nil, kleverr.Newf("%w: item height %v must be positive", ErrInvalidConfig, itemHeight)
	}
	buffer := ApplyAndGet(opts, OptBuffer)
	if buffer < 0 {
		return nil, kleverr.Newf("%w: buffer %d must not be negative", ErrInvalidConfig, buffer)
	}
	return &Clipper{itemHeight: itemHeight, buffer: buffer}, nil
}

// ItemHeight returns the configured row height in pixels.
func (c *Clipper) ItemHeight() float32 {
	return c.itemHeight
}

// Buffer returns the number of extra rows materialized beyond each
// visible edge.
func (c *Clipper) Buffer() int {
	return c.buffer
}

// Window computes the materialized range for n items at the given
// scroll offset and viewport height.
//
// The visible rows are always fully covered: the start index rounds
// down and the end index rounds up, so a partially visible row at
// either edge is included even before the buffer is applied. The
// buffer then widens the range symmetrically and the result is
// clamped to [0, n].
//
// Negative scroll offsets and viewport heights can briefly arrive
// from the host during resize transitions; they are clamped to zero
// rather than rejected.
func (c *Clipper) Window(n int, scrollY, viewportH float32) Window {
	if n <= 0 {
		return Window{}
	}

	scrollY = maxf(scrollY, 0)
	viewportH = maxf(viewportH, 0)

	start := int(scrollY/c.itemHeight) - c.buffer
	end := int(math.Ceil(float64((scrollY+viewportH)/c.itemHeight))) + c.buffer

	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end < start {
		end = start
	}
	if end > n {
		end = n
	}

	return Window{
		Start:       start,
		End:         end,
		OffsetTop:   float32(start) * c.itemHeight,
		TotalHeight: float32(n) * c.itemHeight,
	}
}

// ItemTop returns the pixel offset of item i within the virtual
// content.
func (c *Clipper) ItemTop(i int) float32 {
	return float32(i) * c.itemHeight
}

// MaxScroll returns the largest scroll offset that still shows a full
// viewport of content, or 0 when the content is shorter than the
// viewport.
func (c *Clipper) MaxScroll(n int, viewportH float32) float32 {
	return maxf(float32(n)*c.itemHeight-viewportH, 0)
}

// ScrollToItem returns the scroll offset needed to bring item i fully
// into view. If the item is already fully visible the current offset
// is returned unchanged. Out-of-range indices leave the offset alone.
func (c *Clipper) ScrollToItem(n, i int, current, viewportH float32) float32 {
	if i < 0 || i >= n {
		return current
	}

	itemTop := float32(i) * c.itemHeight
	itemBottom := itemTop + c.itemHeight

	if itemTop < current {
		return itemTop
	}
	if itemBottom > current+viewportH {
		return itemBottom - viewportH
	}
	return current
}
