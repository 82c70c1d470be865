package vlist

// Scrollbar geometry, kept as pure functions so the thumb math can be
// tested without a renderer. All values are pixels; contentH is the
// virtual content height (Window.TotalHeight), trackH the height of
// the scrollbar track (normally the viewport height).

// MinThumbHeight keeps the thumb grabbable for very long lists.
const MinThumbHeight float32 = 20

// ThumbHeight returns the scrollbar thumb height for the given track
// and content heights. The thumb shrinks proportionally with the
// visible fraction but never below MinThumbHeight.
func ThumbHeight(trackH, contentH float32) float32 {
	if contentH <= trackH || contentH <= 0 {
		return trackH
	}
	return maxf(MinThumbHeight, trackH*(trackH/contentH))
}

// ThumbOffset returns the thumb's top position within the track for
// the given scroll offset.
func ThumbOffset(scrollY, trackH, contentH, thumbH float32) float32 {
	maxScroll := contentH - trackH
	if maxScroll <= 0 {
		return 0
	}
	return clampf(scrollY/maxScroll, 0, 1) * (trackH - thumbH)
}

// ScrollForThumbDelta converts a thumb drag distance into a scroll
// offset, anchored at the offset when the drag started. This is the
// inverse of ThumbOffset: dragging the thumb across the free track
// span sweeps the whole scroll range.
func ScrollForThumbDelta(startScroll, deltaY, trackH, contentH, thumbH float32) float32 {
	maxScroll := contentH - trackH
	track := trackH - thumbH
	if maxScroll <= 0 || track <= 0 {
		return 0
	}
	return clampf(startScroll+deltaY*(maxScroll/track), 0, maxScroll)
}
