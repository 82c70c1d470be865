package vlist

// Viewport is the single-writer holder of the scroll state a window
// is derived from. All mutation happens on the UI thread; the clipper
// borrows the state read-only, so no locking is involved.
//
// The derived Window is memoized: it is recomputed only when a setter
// actually changed an input, and replaced atomically, so readers see
// either the previous complete result or the next one.
type Viewport struct {
	clip *Clipper

	n       int
	scrollY float32
	height  float32

	gen    uint64 // bumped on wholesale item replacement
	window Window
	valid  bool
}

// NewViewport creates a viewport deriving windows through clip.
func NewViewport(clip *Clipper) *Viewport {
	return &Viewport{clip: clip}
}

// SetCount replaces the item count. Called when the item sequence is
// replaced wholesale; always invalidates the cached window and bumps
// the generation, since equal length does not mean equal items.
func (v *Viewport) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	v.n = n
	v.gen++
	v.valid = false
	// Content may have shrunk below the current offset
	v.scrollY = clampf(v.scrollY, 0, v.clip.MaxScroll(v.n, v.height))
}

// SetScroll sets the absolute scroll offset. Values outside the valid
// range arrive from the host during resize transitions and are
// clamped, never rejected.
func (v *Viewport) SetScroll(y float32) {
	y = clampf(y, 0, v.clip.MaxScroll(v.n, v.height))
	if y != v.scrollY {
		v.scrollY = y
		v.valid = false
	}
}

// ScrollBy adjusts the scroll offset by a delta.
func (v *Viewport) ScrollBy(dy float32) {
	v.SetScroll(v.scrollY + dy)
}

// SetHeight sets the viewport height. Negative transients clamp to 0.
func (v *Viewport) SetHeight(h float32) {
	h = maxf(h, 0)
	if h != v.height {
		v.height = h
		v.valid = false
		// A shorter content/viewport ratio can lower the max offset
		v.scrollY = clampf(v.scrollY, 0, v.clip.MaxScroll(v.n, v.height))
	}
}

// Scroll returns the current scroll offset.
func (v *Viewport) Scroll() float32 { return v.scrollY }

// Height returns the current viewport height.
func (v *Viewport) Height() float32 { return v.height }

// Count returns the current item count.
func (v *Viewport) Count() int { return v.n }

// Generation returns a counter that increases every time the item
// sequence is replaced. Consumers caching per-item artifacts compare
// generations to detect staleness.
func (v *Viewport) Generation() uint64 { return v.gen }

// Window returns the materialized range for the current state,
// recomputing only when an input changed since the last call.
func (v *Viewport) Window() Window {
	if !v.valid {
		v.window = v.clip.Window(v.n, v.scrollY, v.height)
		v.valid = true
	}
	return v.window
}

// Invalidate forces the next Window call to recompute.
func (v *Viewport) Invalidate() {
	v.valid = false
}
