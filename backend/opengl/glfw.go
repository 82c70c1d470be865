package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-virtual/vlist"
)

// GLFWInputAdapter adapts GLFW input to vlist.InputState.
// Callbacks fire from glfw.PollEvents on the main thread, matching
// the package's single-writer model.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *vlist.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  vlist.NewInputState(),
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update updates the input state for a new frame.
// Call this at the start of each frame, after glfw.PollEvents.
func (a *GLFWInputAdapter) Update() *vlist.InputState {
	// Update mouse position
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *vlist.InputState {
	return a.input
}

// Reset clears per-frame state. Call after the frame is drawn,
// before the next PollEvents.
func (a *GLFWInputAdapter) Reset() {
	a.input.Reset()
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	listKey := glfwKeyToListKey(key)
	if listKey == vlist.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(listKey, true)
	case glfw.Release:
		a.input.SetKey(listKey, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	listButton := glfwMouseButtonToList(button)
	if listButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(listButton, true)
	case glfw.Release:
		a.input.SetMouseButton(listButton, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToListKey maps GLFW keys to list navigation keys.
func glfwKeyToListKey(key glfw.Key) vlist.Key {
	switch key {
	case glfw.KeyUp:
		return vlist.KeyUp
	case glfw.KeyDown:
		return vlist.KeyDown
	case glfw.KeyPageUp:
		return vlist.KeyPageUp
	case glfw.KeyPageDown:
		return vlist.KeyPageDown
	case glfw.KeyHome:
		return vlist.KeyHome
	case glfw.KeyEnd:
		return vlist.KeyEnd
	case glfw.KeyEnter:
		return vlist.KeyEnter
	default:
		return vlist.KeyNone
	}
}

// glfwMouseButtonToList maps GLFW mouse buttons to list mouse buttons.
func glfwMouseButtonToList(button glfw.MouseButton) vlist.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return vlist.MouseButtonLeft
	case glfw.MouseButtonRight:
		return vlist.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return vlist.MouseButtonMiddle
	default:
		return -1
	}
}
