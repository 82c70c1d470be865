package vlist

// PlanItem is one row the renderer must materialize. Y is the row's
// top edge within the virtual content; subtract the scroll offset to
// get the on-screen position.
type PlanItem struct {
	Key   string  // Stable item identity — key rendered rows by this, never by Index
	Index int     // Position in the full item sequence
	Y     float32 // Top edge within the virtual content
}

// RenderPlan is the contract between the windowing core and a
// renderer. The host draws a spacer of Window.TotalHeight so the
// scrollbar behaves as if every item were rendered, positions a
// wrapper at Window.OffsetTop, and renders exactly the Items inside
// it.
//
// Generation identifies the item snapshot the plan was built from;
// cached row artifacts from older generations are stale.
type RenderPlan struct {
	Window     Window
	Items      []PlanItem
	Generation uint64
}

// BuildPlan expands a window into per-row placements using the keys
// of the current snapshot. keys must have at least Window.End
// entries.
func BuildPlan(w Window, itemHeight float32, keys []string, gen uint64) RenderPlan {
	plan := RenderPlan{
		Window:     w,
		Generation: gen,
	}
	if w.Len() == 0 {
		return plan
	}
	plan.Items = make([]PlanItem, 0, w.Len())
	for i := w.Start; i < w.End; i++ {
		plan.Items = append(plan.Items, PlanItem{
			Key:   keys[i],
			Index: i,
			Y:     float32(i) * itemHeight,
		})
	}
	return plan
}
