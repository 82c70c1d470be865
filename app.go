package vlist

// Renderer is the interface for rendering frame draw data.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// Frame holds per-frame state while a frame is open.
// Only valid between App.Begin() and App.End() calls.
type Frame struct {
	DrawList    *DrawList
	Input       *InputState
	DisplaySize Vec2
	DeltaTime   float32
	Style       Style
	FrameCount  uint64
}

// App drives the per-frame lifecycle: it owns the renderer and style,
// hands out a Frame with a pooled draw list on Begin, and submits the
// finalized list on End.
type App struct {
	renderer Renderer
	style    Style
	frame    Frame
}

// AppOption configures an App instance.
type AppOption func(*App)

// WithStyle sets the app style.
func WithStyle(style Style) AppOption {
	return func(a *App) { a.style = style }
}

// NewApp creates a new App instance.
func NewApp(renderer Renderer, opts ...AppOption) *App {
	a := &App{
		renderer: renderer,
		style:    DefaultStyle(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Begin starts a new frame and returns its state.
// Call this at the start of each frame before drawing.
func (a *App) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Frame {
	f := &a.frame

	f.DrawList = AcquireDrawList()
	f.Input = input
	f.DisplaySize = displaySize
	f.DeltaTime = deltaTime
	f.Style = a.style
	f.FrameCount++

	if input != nil {
		input.UpdateKeyRepeat(deltaTime)
	}

	return f
}

// End finishes the frame and renders it.
// Call this after all drawing is complete.
func (a *App) End() error {
	f := &a.frame
	if f.DrawList == nil {
		return nil
	}

	f.DrawList.Finalize()
	err := a.renderer.Render(f.DrawList)

	ReleaseDrawList(f.DrawList)
	f.DrawList = nil
	f.Input = nil

	return err
}

// Style returns the current app style.
func (a *App) Style() Style {
	return a.style
}

// SetStyle sets the app style.
func (a *App) SetStyle(style Style) {
	a.style = style
}

// Resize notifies the renderer of a display size change.
func (a *App) Resize(width, height int) {
	a.renderer.Resize(width, height)
}
