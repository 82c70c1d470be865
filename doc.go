/*
Package vlist provides windowed rendering for long lists: only the
rows intersecting the viewport (plus a small buffer) are materialized,
so render cost tracks the viewport height instead of the item count.

# Overview

The core is a pure computation. A Clipper maps (item count, scroll
offset, viewport height) to a Window: the half-open index range to
materialize, the pixel offset of its first row, and the total virtual
content height. Nothing in the core touches a renderer; the same
arithmetic drives the OpenGL backend, a terminal frontend, or a test.

On top of the core, Viewport holds current scroll state and memoizes
the window, Queue coalesces scroll and resize notifications
latest-wins, List pairs an item snapshot with stable row keys, and
ListView turns input into scrolling and a RenderPlan into draw
commands.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(800, 600)
	app := vlist.NewApp(renderer)

	list, _ := vlist.NewList(24, func(r Row) string { return r.ID }, vlist.Buffer(10))
	list.Replace(rows)
	view := vlist.NewListView(list, formatRow, vlist.CacheRows(256))

	// Frame loop
	for !window.ShouldClose() {
	    input := adapter.Update()

	    f := app.Begin(input, vlist.Vec2{X: 800, Y: 600}, deltaTime)
	    bounds := vlist.Rect{X: 0, Y: 0, W: 800, H: 600}
	    view.HandleInput(f, bounds)
	    view.Draw(f, bounds)
	    app.End()

	    window.SwapBuffers()
	}

# Keyboard Shortcuts

	Up/Down          Move selection one row (repeats while held)
	PageUp/PageDown  Scroll by a viewport fraction
	Home             Jump to the top
	End              Jump to the bottom
	Enter            Toggle the selected row's expanded marker

# Threading

The package follows a single-writer model: all mutation happens on the
UI thread, matching GLFW's requirement that event callbacks run on the
main thread. No type in this package is safe for concurrent use.
*/
package vlist
