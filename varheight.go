package vlist

import (
	"sort"

	"github.com/klev-dev/kleverr"
)

// VarClipper windows a list whose rows have individual heights. The
// O(1) index arithmetic of Clipper no longer applies, so it keeps a
// prefix-sum offset table: offsets[i] is the top of item i, with one
// extra entry holding the total height. Range lookup is a binary
// search, O(log n) per scroll notification.
//
// Heights come from a measurement callback and are updated through
// SetHeight under the same single-writer discipline as the viewport:
// the measurement path writes, the windowing path reads, and both run
// on the UI thread.
type VarClipper struct {
	offsets []float32 // len n+1; offsets[0] == 0, offsets[n] == total height
	buffer  int
}

// NewVarClipper creates a variable-height clipper from initial row
// heights. Every height must be positive; a zero-height row would
// make its index unreachable by scrolling, which is the same class of
// setup error as a zero fixed item height.
func NewVarClipper(heights []float32, opts ...Option) (*VarClipper, error) {
	buffer := ApplyAndGet(opts, OptBuffer)
	if buffer < 0 {
		return nil, kleverr.Newf("%w: buffer %d must not be negative", ErrInvalidConfig, buffer)
	}
	c := &VarClipper{buffer: buffer}
	if err := c.Replace(heights); err != nil {
		return nil, err
	}
	return c, nil
}

// Replace swaps in a completely new set of row heights.
func (c *VarClipper) Replace(heights []float32) error {
	offsets := make([]float32, len(heights)+1)
	for i, h := range heights {
		if h <= 0 {
			return kleverr.Newf("%w: height %v of item %d must be positive", ErrInvalidConfig, h, i)
		}
		offsets[i+1] = offsets[i] + h
	}
	c.offsets = offsets
	return nil
}

// SetHeight records a new measured height for item i and shifts every
// offset below it. O(n-i); measurement updates are expected to be
// rare relative to scroll notifications.
func (c *VarClipper) SetHeight(i int, h float32) error {
	if i < 0 || i >= c.Len() {
		return kleverr.Newf("%w: item %d out of range", ErrInvalidConfig, i)
	}
	if h <= 0 {
		return kleverr.Newf("%w: height %v of item %d must be positive", ErrInvalidConfig, h, i)
	}
	delta := h - (c.offsets[i+1] - c.offsets[i])
	if delta == 0 {
		return nil
	}
	for j := i + 1; j < len(c.offsets); j++ {
		c.offsets[j] += delta
	}
	return nil
}

// Len returns the number of rows.
func (c *VarClipper) Len() int {
	return len(c.offsets) - 1
}

// Buffer returns the configured overscan row count.
func (c *VarClipper) Buffer() int {
	return c.buffer
}

// ItemTop returns the pixel offset of item i within the virtual
// content.
func (c *VarClipper) ItemTop(i int) float32 {
	return c.offsets[i]
}

// ItemHeight returns the current height of item i.
func (c *VarClipper) ItemHeight(i int) float32 {
	return c.offsets[i+1] - c.offsets[i]
}

// TotalHeight returns the full virtual content height.
func (c *VarClipper) TotalHeight() float32 {
	return c.offsets[c.Len()]
}

// MaxScroll returns the largest useful scroll offset for the given
// viewport height.
func (c *VarClipper) MaxScroll(viewportH float32) float32 {
	return maxf(c.TotalHeight()-viewportH, 0)
}

// Window computes the materialized range for the current offsets.
// The same contract as Clipper.Window: visible rows are always fully
// covered, the buffer widens the range symmetrically, negative
// transients clamp to zero, and the result is clamped to [0, n].
func (c *VarClipper) Window(scrollY, viewportH float32) Window {
	n := c.Len()
	if n == 0 {
		return Window{}
	}

	scrollY = maxf(scrollY, 0)
	bottom := scrollY + maxf(viewportH, 0)

	// First row whose bottom edge is below the top of the viewport.
	start := sort.Search(n, func(i int) bool {
		return c.offsets[i+1] > scrollY
	})
	// First row that starts at or past the bottom of the viewport.
	end := sort.Search(n, func(i int) bool {
		return c.offsets[i] >= bottom
	})

	start -= c.buffer
	end += c.buffer

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
		OffsetTop:   c.offsets[start],
		TotalHeight: c.TotalHeight(),
	}
}

// ScrollToItem returns the scroll offset that brings item i fully
// into view, or the current offset if it already is.
func (c *VarClipper) ScrollToItem(i int, current, viewportH float32) float32 {
	if i < 0 || i >= c.Len() {
		return current
	}

	itemTop := c.offsets[i]
	itemBottom := c.offsets[i+1]

	if itemTop < current {
		return itemTop
	}
	if itemBottom > current+viewportH {
		return itemBottom - viewportH
	}
	return current
}
