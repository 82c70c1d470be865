package vlist

// RowState is the per-item view state kept across frames while an
// item stays materialized. It is keyed by item key, so the same item
// keeps its state as the window slides underneath it.
type RowState struct {
	Expanded bool
}

// ListView draws a windowed list and translates input into scroll
// notifications. It owns the event queue, the per-item state store
// and the optional row cache; the list itself stays a pure data
// holder.
//
// Per frame the flow is HandleInput (collect input, coalesce, apply)
// then Draw (window, plan, emit primitives). Both run on the UI
// thread.
type ListView[T any] struct {
	list   *List[T]
	queue  *Queue
	format func(item T, width int) string

	cache    *RowCache
	rowState *KeyStore[RowState]

	// Selection is tracked by key so it survives Replace; the index
	// is a cached position re-resolved when the snapshot changes.
	selectedKey   string
	selectedIndex int

	dragging        bool
	dragStartY      float32
	dragStartScroll float32

	wheelStep    float32
	pageFraction float32
	scrollbarVis ScrollbarVisibility
	fixedWidth   float32
}

// NewListView creates a view over list. format renders one item into
// a single line at most width characters wide; width is derived from
// the draw bounds and the style's character width.
func NewListView[T any](list *List[T], format func(item T, width int) string, opts ...Option) *ListView[T] {
	o := applyOptions(opts)

	v := &ListView[T]{
		list:          list,
		queue:         NewQueue(),
		format:        format,
		rowState:      NewKeyStore[RowState](),
		selectedIndex: -1,
		wheelStep:     GetOpt(o, OptWheelStep),
		pageFraction:  GetOpt(o, OptPageFraction),
		scrollbarVis:  GetOpt(o, OptScrollbarVisibility),
		fixedWidth:    GetOpt(o, OptWidth),
	}

	if capacity := GetOpt(o, OptCacheCapacity); capacity > 0 {
		v.cache = NewRowCache(capacity)
	}

	return v
}

// List returns the underlying list.
func (v *ListView[T]) List() *List[T] { return v.list }

// Queue returns the view's notification queue. External sources
// (window system callbacks, timers) post scroll and resize events
// here; they are coalesced and applied on the next HandleInput.
func (v *ListView[T]) Queue() *Queue { return v.queue }

// Cache returns the row cache, or nil when caching is disabled.
func (v *ListView[T]) Cache() *RowCache { return v.cache }

// Selected returns the index of the selected item, or -1.
func (v *ListView[T]) Selected() int {
	v.resyncSelection()
	return v.selectedIndex
}

// SelectedKey returns the key of the selected item, or "".
func (v *ListView[T]) SelectedKey() string {
	v.resyncSelection()
	return v.selectedKey
}

// Select selects the item at index i and scrolls it into view.
func (v *ListView[T]) Select(i int) {
	if i < 0 || i >= v.list.Len() {
		return
	}
	v.selectedIndex = i
	v.selectedKey = v.list.Key(i)
	v.list.EnsureVisible(i)
}

// ClearSelection removes the selection.
func (v *ListView[T]) ClearSelection() {
	v.selectedIndex = -1
	v.selectedKey = ""
}

// resyncSelection re-resolves the selected key to an index after the
// snapshot changed. A filtered-out item clears the selection.
func (v *ListView[T]) resyncSelection() {
	if v.selectedKey == "" {
		return
	}
	if v.selectedIndex >= 0 && v.selectedIndex < v.list.Len() &&
		v.list.Key(v.selectedIndex) == v.selectedKey {
		return
	}
	for i := 0; i < v.list.Len(); i++ {
		if v.list.Key(i) == v.selectedKey {
			v.selectedIndex = i
			return
		}
	}
	v.selectedIndex = -1
	v.selectedKey = ""
}

// HandleInput collects this frame's input into the queue, flushes the
// coalesced result into the viewport, and then handles selection.
// Call before Draw with the same bounds.
func (v *ListView[T]) HandleInput(f *Frame, bounds Rect) {
	in := f.Input
	vp := v.list.Viewport()
	clip := v.list.Clipper()
	n := v.list.Len()

	if bounds.H != vp.Height() {
		v.queue.PostResize(bounds.H)
	}

	mouse := Vec2{X: in.MouseX, Y: in.MouseY}
	contentH := clip.ItemHeight() * float32(n)
	sbVisible := v.scrollbarVisible(bounds, contentH)

	if in.MouseWheelY != 0 && bounds.Contains(mouse) {
		v.queue.PostScrollDelta(-in.MouseWheelY*v.wheelStep, vp.Scroll())
	}

	if in.KeyRepeated(KeyPageDown) {
		v.queue.PostScrollDelta(bounds.H*v.pageFraction, vp.Scroll())
	}
	if in.KeyRepeated(KeyPageUp) {
		v.queue.PostScrollDelta(-bounds.H*v.pageFraction, vp.Scroll())
	}
	if in.KeyPressed(KeyHome) {
		v.queue.PostScroll(0)
	}
	if in.KeyPressed(KeyEnd) {
		v.queue.PostScroll(clip.MaxScroll(n, bounds.H))
	}

	if sbVisible {
		v.handleScrollbar(f, bounds, contentH)
	}

	if v.queue.Flush(vp) && listVerbose() {
		w := vp.Window()
		listLogger.Debug("viewport updated",
			"scroll", vp.Scroll(), "height", vp.Height(),
			"start", w.Start, "end", w.End)
	}

	v.resyncSelection()

	if in.KeyRepeated(KeyDown) && n > 0 {
		v.Select(min(v.selectedIndex+1, n-1))
	}
	if in.KeyRepeated(KeyUp) && n > 0 {
		if v.selectedIndex < 0 {
			v.Select(0)
		} else {
			v.Select(max(v.selectedIndex-1, 0))
		}
	}
	if in.KeyPressed(KeyEnter) && v.selectedKey != "" {
		state := v.rowState.Get(v.selectedKey, RowState{})
		state.Expanded = !state.Expanded
	}

	rowArea := bounds
	if sbVisible {
		rowArea.W -= f.Style.ScrollbarSize
	}
	if in.MouseClicked(MouseButtonLeft) && !v.dragging && rowArea.Contains(mouse) {
		i := int((vp.Scroll() + mouse.Y - bounds.Y) / clip.ItemHeight())
		if i >= 0 && i < n {
			v.selectedIndex = i
			v.selectedKey = v.list.Key(i)
		}
	}
}

// handleScrollbar resolves clicks and drags on the scrollbar track.
func (v *ListView[T]) handleScrollbar(f *Frame, bounds Rect, contentH float32) {
	in := f.Input
	vp := v.list.Viewport()
	style := f.Style

	track := Rect{
		X: bounds.X + bounds.W - style.ScrollbarSize,
		Y: bounds.Y,
		W: style.ScrollbarSize,
		H: bounds.H,
	}
	thumbH := ThumbHeight(bounds.H, contentH)
	thumbY := bounds.Y + ThumbOffset(vp.Scroll(), bounds.H, contentH, thumbH)
	thumb := Rect{X: track.X, Y: thumbY, W: track.W, H: thumbH}

	mouse := Vec2{X: in.MouseX, Y: in.MouseY}

	if in.MouseClicked(MouseButtonLeft) && track.Contains(mouse) {
		if thumb.Contains(mouse) {
			v.dragging = true
			v.dragStartY = mouse.Y
			v.dragStartScroll = vp.Scroll()
		} else {
			// Page toward the click
			delta := bounds.H * v.pageFraction
			if mouse.Y < thumbY {
				delta = -delta
			}
			v.queue.PostScrollDelta(delta, vp.Scroll())
		}
	}

	if v.dragging {
		if in.MouseDown(MouseButtonLeft) {
			v.queue.PostScroll(ScrollForThumbDelta(
				v.dragStartScroll, mouse.Y-v.dragStartY,
				bounds.H, contentH, thumbH))
		} else {
			v.dragging = false
		}
	}
}

// scrollbarVisible decides per the configured visibility mode.
func (v *ListView[T]) scrollbarVisible(bounds Rect, contentH float32) bool {
	switch v.scrollbarVis {
	case ScrollbarAlways:
		return true
	case ScrollbarNever:
		return false
	default:
		return contentH > bounds.H
	}
}

// Draw emits the current window into the frame's draw list: spacer
// translation, one row per plan entry, then the scrollbar.
func (v *ListView[T]) Draw(f *Frame, bounds Rect) {
	dl := f.DrawList
	style := f.Style
	vp := v.list.Viewport()
	clip := v.list.Clipper()

	dl.PushClipRect(bounds.X, bounds.Y, bounds.X+bounds.W, bounds.Y+bounds.H)
	dl.AddRect(bounds.X, bounds.Y, bounds.W, bounds.H, style.BgColor)

	plan := v.list.Plan()
	scroll := vp.Scroll()
	rowH := clip.ItemHeight()
	contentH := rowH * float32(v.list.Len())
	sbVisible := v.scrollbarVisible(bounds, contentH)

	rowW := bounds.W
	if sbVisible {
		rowW -= style.ScrollbarSize
	}
	// A fixed format width keeps row cache keys stable across window
	// resizes.
	formatW := rowW
	if v.fixedWidth > 0 {
		formatW = v.fixedWidth
	}
	widthChars := int((formatW - 2*style.RowPadding) / style.CharWidth)
	if widthChars < 1 {
		widthChars = 1
	}

	mouse := Vec2{X: f.Input.MouseX, Y: f.Input.MouseY}

	for _, it := range plan.Items {
		y := bounds.Y + it.Y - scroll
		row := Rect{X: bounds.X, Y: y, W: rowW, H: rowH}

		state := v.rowState.Get(it.Key, RowState{})

		switch {
		case it.Key == v.selectedKey:
			dl.AddRect(row.X, row.Y, row.W, row.H, style.SelectedBgColor)
		case row.Contains(mouse):
			dl.AddRect(row.X, row.Y, row.W, row.H, style.HoveredBgColor)
		case it.Index%2 == 1:
			dl.AddRect(row.X, row.Y, row.W, row.H, style.RowBgAltColor)
		}

		text := v.rowText(it, widthChars, style.Name, plan.Generation)
		if state.Expanded {
			text = "v " + text
		}

		textColor := style.TextColor
		if it.Key == v.selectedKey {
			textColor = style.SelectedTextColor
		}
		dl.AddText(bounds.X+style.RowPadding, y+style.RowPadding, text,
			textColor, style.CharWidth, style.CharHeight)
	}

	if sbVisible {
		v.drawScrollbar(f, bounds, contentH)
	}

	dl.PopClipRect()
	v.rowState.NextFrame()
}

// rowText formats one row, consulting the cache when enabled.
func (v *ListView[T]) rowText(it PlanItem, widthChars int, theme string, gen uint64) string {
	if v.cache == nil {
		return v.format(v.list.Item(it.Index), widthChars)
	}

	key := RowKey{
		Key:        it.Key,
		Width:      widthChars,
		Theme:      theme,
		Generation: gen,
	}
	if text, ok := v.cache.Get(key); ok {
		return text
	}
	text := v.format(v.list.Item(it.Index), widthChars)
	v.cache.Put(key, text)
	return text
}

// drawScrollbar draws the track and thumb at the right edge.
func (v *ListView[T]) drawScrollbar(f *Frame, bounds Rect, contentH float32) {
	dl := f.DrawList
	style := f.Style
	vp := v.list.Viewport()

	trackX := bounds.X + bounds.W - style.ScrollbarSize
	dl.AddRect(trackX, bounds.Y, style.ScrollbarSize, bounds.H, style.ScrollbarBgColor)

	thumbH := ThumbHeight(bounds.H, contentH)
	thumbY := bounds.Y + ThumbOffset(vp.Scroll(), bounds.H, contentH, thumbH)

	grabColor := style.ScrollbarGrabColor
	thumb := Rect{X: trackX, Y: thumbY, W: style.ScrollbarSize, H: thumbH}
	switch {
	case v.dragging:
		grabColor = style.ScrollbarGrabActive
	case thumb.Contains(Vec2{X: f.Input.MouseX, Y: f.Input.MouseY}):
		grabColor = style.ScrollbarGrabHovered
	}
	dl.AddRect(trackX+1, thumbY, style.ScrollbarSize-2, thumbH, grabColor)
}
