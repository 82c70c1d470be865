package vlist

// Queue collects scroll and resize notifications from the host
// between frames and coalesces them latest-wins: the viewport is a
// view of current truth, not an event log, so when notifications
// arrive faster than frames render only the most recent value of each
// kind needs to be reflected.
//
// Flush applies the pending values and triggers at most one window
// recomputation per batch. Notifications are never applied out of
// order because only the final value of each kind survives.
//
// The queue is written by host callbacks and drained by the frame
// loop on the same thread (GLFW delivers callbacks from PollEvents on
// the main thread), so no locking is needed.
type Queue struct {
	hasScroll bool
	scrollY   float32

	hasResize bool
	height    float32
}

// NewQueue creates an empty notification queue.
func NewQueue() *Queue {
	return &Queue{}
}

// PostScroll records an absolute scroll offset. A later PostScroll in
// the same batch supersedes it.
func (q *Queue) PostScroll(y float32) {
	q.scrollY = y
	q.hasScroll = true
}

// PostScrollDelta records a relative scroll adjustment. Deltas
// accumulate onto the pending target (or the current offset when no
// target is pending) so rapid wheel notches are not lost.
func (q *Queue) PostScrollDelta(dy float32, current float32) {
	base := current
	if q.hasScroll {
		base = q.scrollY
	}
	q.scrollY = base + dy
	q.hasScroll = true
}

// PostResize records a new viewport height, superseding any pending
// one.
func (q *Queue) PostResize(h float32) {
	q.height = h
	q.hasResize = true
}

// Pending reports whether any notification is waiting.
func (q *Queue) Pending() bool {
	return q.hasScroll || q.hasResize
}

// Flush applies the coalesced notifications to the viewport and
// clears the queue. Returns true if anything was applied. Resize is
// applied before scroll so the scroll clamp uses the new geometry.
func (q *Queue) Flush(vp *Viewport) bool {
	applied := false
	if q.hasResize {
		vp.SetHeight(q.height)
		q.hasResize = false
		applied = true
	}
	if q.hasScroll {
		vp.SetScroll(q.scrollY)
		q.hasScroll = false
		applied = true
	}
	return applied
}

// Drop discards all pending notifications without applying them.
// Superseded state is simply never computed against.
func (q *Queue) Drop() {
	q.hasScroll = false
	q.hasResize = false
}
