package vlist

// Option configures a clipper, list or view.
type Option func(*options)

// options holds configuration via the extensions map. All options use
// the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for options. Built-in keys are defined below;
// external packages can define their own keys for custom views.
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value. The
// default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety, falling back to
// the key's default when unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ScrollbarVisibility controls when the scrollbar is shown.
type ScrollbarVisibility int

const (
	ScrollbarAuto   ScrollbarVisibility = iota // Show only when content exceeds viewport
	ScrollbarAlways                            // Always show
	ScrollbarNever                             // Never show
)

// --- Built-in option keys ---
var (
	OptBuffer              = NewOptKey("buffer", 0)
	OptWidth               = NewOptKey[float32]("width", 0)
	OptScrollbarVisibility = NewOptKey("scrollbarVisibility", ScrollbarAuto)
	OptWheelStep           = NewOptKey[float32]("wheelStep", 30)
	OptPageFraction        = NewOptKey[float32]("pageFraction", 0.8)
	OptCacheCapacity       = NewOptKey("cacheCapacity", 0)
)

// Buffer sets the number of extra rows materialized beyond each
// visible edge (overscan). The buffer masks rendering latency during
// fast scrolling; it only ever adds rows, never removes visible ones.
func Buffer(rows int) Option { return WithOpt(OptBuffer, rows) }

// WithWidth fixes the width rows are formatted for instead of
// deriving it from the draw bounds, keeping row cache keys stable
// across window resizes.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// ShowScrollbar controls scrollbar visibility.
func ShowScrollbar(always bool) Option {
	if always {
		return WithOpt(OptScrollbarVisibility, ScrollbarAlways)
	}
	return WithOpt(OptScrollbarVisibility, ScrollbarAuto)
}

// HideScrollbar disables the scrollbar entirely.
func HideScrollbar() Option { return WithOpt(OptScrollbarVisibility, ScrollbarNever) }

// WheelStep sets how many pixels one mouse-wheel notch scrolls.
func WheelStep(px float32) Option { return WithOpt(OptWheelStep, px) }

// PageFraction sets how much of the viewport PageUp/PageDown scroll.
func PageFraction(f float32) Option { return WithOpt(OptPageFraction, f) }

// CacheRows enables the row render cache with the given entry
// capacity. Zero disables caching.
func CacheRows(capacity int) Option { return WithOpt(OptCacheCapacity, capacity) }
