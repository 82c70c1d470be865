package vlist

import "github.com/klev-dev/kleverr"

// List pairs an ordered item snapshot with the clipper and viewport
// that window it. T is the display payload; key extracts a stable,
// unique identity for each item, which is what rendered rows and
// per-item state are keyed by as the window slides.
//
// The snapshot is immutable between Replace calls: the list never
// mutates items in place, and replacing them wholesale (filtering,
// refresh) invalidates every derived artifact.
type List[T any] struct {
	clip  *Clipper
	vp    *Viewport
	items []T
	keys  []string
	keyFn func(T) string
}

// NewList creates a list with fixed-height rows. Geometry is
// validated here; a nil key function is a configuration error for the
// same reason a zero item height is: it would fail far from the call
// that caused it.
func NewList[T any](itemHeight float32, key func(T) string, opts ...Option) (*List[T], error) {
	if key == nil {
		return nil, kleverr.Newf("%w: nil key function", ErrInvalidConfig)
	}
	clip, err := NewClipper(itemHeight, opts...)
	if err != nil {
		return nil, err
	}
	return &List[T]{
		clip:  clip,
		vp:    NewViewport(clip),
		keyFn: key,
	}, nil
}

// Replace swaps in a new item snapshot. The slice is taken over by
// the list and must not be mutated by the caller afterwards. Keys are
// extracted once here; duplicate keys break row identity and are the
// caller's contract to avoid.
func (l *List[T]) Replace(items []T) {
	l.items = items
	if cap(l.keys) < len(items) {
		l.keys = make([]string, len(items))
	}
	l.keys = l.keys[:len(items)]
	for i, it := range items {
		l.keys[i] = l.keyFn(it)
	}
	l.vp.SetCount(len(items))
}

// Len returns the number of items in the current snapshot.
func (l *List[T]) Len() int { return len(l.items) }

// Item returns the item at index i of the current snapshot.
func (l *List[T]) Item(i int) T { return l.items[i] }

// Key returns the stable key of the item at index i.
func (l *List[T]) Key(i int) string { return l.keys[i] }

// Viewport returns the list's scroll state holder.
func (l *List[T]) Viewport() *Viewport { return l.vp }

// Clipper returns the list's window computer.
func (l *List[T]) Clipper() *Clipper { return l.clip }

// Window returns the current materialized range.
func (l *List[T]) Window() Window { return l.vp.Window() }

// Plan builds the render plan for the current window: the spacer
// height, the wrapper offset, and one keyed entry per materialized
// item.
func (l *List[T]) Plan() RenderPlan {
	return BuildPlan(l.vp.Window(), l.clip.ItemHeight(), l.keys, l.vp.Generation())
}

// EnsureVisible scrolls just far enough to bring item i fully into
// view. Items already visible leave the offset untouched, so
// selection changes do not cause gratuitous jumps.
func (l *List[T]) EnsureVisible(i int) {
	l.vp.SetScroll(l.clip.ScrollToItem(l.Len(), i, l.vp.Scroll(), l.vp.Height()))
}
