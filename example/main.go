// Example renders a virtualized process table: every process on the
// machine is one row, but only the rows inside the viewport (plus the
// overscan buffer) are materialized each frame.
//
// Prerequisites:
//
//	OpenGL 4.1 and X11/GLFW headers
//	go run ./example/
//
// Controls: mouse wheel and scrollbar to scroll, Up/Down to move the
// selection, PageUp/PageDown/Home/End to jump, Enter to mark a row.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/go-virtual/vlist"
	"github.com/go-virtual/vlist/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "vlist process table"

	rowHeight       = 18
	refreshInterval = 2 * time.Second
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "verbose logging")
	synthetic := flag.Int("synthetic", 0, "use N synthetic rows instead of live processes")
	flag.Parse()
	vlist.SetVerbose(*verbose)

	if err := run(*synthetic); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// procRow is one row of the table.
type procRow struct {
	PID  int32
	Name string
	CPU  float64
	RSS  uint64
}

func (r procRow) Key() string {
	return fmt.Sprintf("%d", r.PID)
}

// loadProcesses snapshots the live process table, sorted by PID for a
// stable order across refreshes.
func loadProcesses() ([]procRow, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	rows := make([]procRow, 0, len(procs))
	for _, p := range procs {
		name, _ := p.Name()
		cpuPct, _ := p.CPUPercent()
		memInfo, _ := p.MemoryInfo()

		var rss uint64
		if memInfo != nil {
			rss = memInfo.RSS
		}

		rows = append(rows, procRow{
			PID:  p.Pid,
			Name: name,
			CPU:  cpuPct,
			RSS:  rss,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].PID < rows[j].PID })
	return rows, nil
}

// syntheticRows builds a fake table when live processes are not
// wanted or not available.
func syntheticRows(n int) []procRow {
	rows := make([]procRow, n)
	for i := range rows {
		rows[i] = procRow{
			PID:  int32(i + 1),
			Name: fmt.Sprintf("proc-%05d", i+1),
			CPU:  float64(i%100) / 2,
			RSS:  uint64(i) * 4096,
		}
	}
	return rows
}

// formatRow renders one row into at most width characters.
func formatRow(r procRow, width int) string {
	line := fmt.Sprintf("%7d  %-24s %6.1f%%  %8d KB", r.PID, r.Name, r.CPU, r.RSS/1024)
	if len(line) > width {
		line = line[:width]
	}
	return line
}

func run(synthetic int) error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)
	app := vlist.NewApp(renderer)

	// The list: fixed-height rows keyed by PID, with overscan and a
	// row cache sized for a few windows' worth of rows.
	list, err := vlist.NewList(rowHeight, procRow.Key, vlist.Buffer(10))
	if err != nil {
		return err
	}
	view := vlist.NewListView(list, formatRow, vlist.CacheRows(512))

	refresh := func() {
		if synthetic > 0 {
			list.Replace(syntheticRows(synthetic))
			return
		}
		rows, err := loadProcesses()
		if err != nil {
			fmt.Fprintf(os.Stderr, "process snapshot failed, using synthetic rows: %v\n", err)
			list.Replace(syntheticRows(10000))
			return
		}
		list.Replace(rows)
	}
	refresh()
	lastRefresh := time.Now()

	// Window resizes land on the view's queue and are coalesced with
	// any scrolling before the next frame.
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		app.Resize(width, height)
		view.Queue().PostResize(float32(height))
	})

	lastFrame := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()
		input := inputAdapter.Update()

		now := time.Now()
		deltaTime := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now

		if now.Sub(lastRefresh) >= refreshInterval {
			refresh()
			lastRefresh = now
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.08, 0.08, 0.09, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		f := app.Begin(input, vlist.Vec2{X: float32(w), Y: float32(h)}, deltaTime)
		bounds := vlist.Rect{X: 0, Y: 0, W: float32(w), H: float32(h)}
		view.HandleInput(f, bounds)
		view.Draw(f, bounds)
		if err := app.End(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		inputAdapter.Reset()
		window.SwapBuffers()
	}

	if m := view.Cache().Metrics; m.Hits+m.Misses > 0 {
		fmt.Printf("row cache: %.1f%% hit rate (%d hits, %d misses, %d evictions)\n",
			m.HitRate(), m.Hits, m.Misses, m.Evictions)
	}

	return nil
}
