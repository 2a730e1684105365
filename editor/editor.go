// Package editor turns pointer, scroll and resize events into camera
// and canvas changes.
//
// An Editor owns nothing global: it is handed a Camera, a Canvas and a
// tool State and routes each event through a table of handlers indexed
// by the active tool mode. A gesture starts with Press over the canvas,
// continues with Drag and ends with Release, which commits the preview.
//
// Window coordinates have their origin at the bottom-left corner of the
// window, Y growing up.
package editor

import (
	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/camera"
	"github.com/gogpu/pixed/canvas"
	"github.com/gogpu/pixed/config"
	"github.com/gogpu/pixed/tool"
)

// Editor dispatches input events to the active tool.
//
// Editor is NOT safe for concurrent use; call it from the event loop.
type Editor struct {
	cam    *camera.Camera
	canvas *canvas.Canvas
	state  *tool.State

	handlers [tool.NumModes]handler

	// active is true between a Press over the canvas and the next Release.
	active bool

	status statusFormatter
}

// Option configures an Editor during creation.
type Option func(*Editor)

// New creates an editor over the given camera, canvas and tool state.
func New(cam *camera.Camera, cv *canvas.Canvas, state *tool.State, opts ...Option) *Editor {
	e := &Editor{
		cam:      cam,
		canvas:   cv,
		state:    state,
		handlers: defaultHandlers(),
		status:   newStatusFormatter(defaultLanguage),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewFromConfig builds the camera, canvas and tool state described by
// cfg and returns an editor over them. Quad notifications go to b.
func NewFromConfig(cfg config.Config, b canvas.Batch, opts ...Option) *Editor {
	cv := canvas.New(cfg.Geometry(),
		canvas.WithBatch(b),
		canvas.WithBackground(cfg.Canvas.Background))
	state := tool.NewState(cfg.Colors.Primary, cfg.Colors.Secondary)
	return New(cfg.NewCamera(), cv, state, opts...)
}

// Camera returns the editor's camera.
func (e *Editor) Camera() *camera.Camera {
	return e.cam
}

// Canvas returns the editor's canvas.
func (e *Editor) Canvas() *canvas.Canvas {
	return e.canvas
}

// State returns the editor's tool state.
func (e *Editor) State() *tool.State {
	return e.state
}

// Mode returns the active tool mode.
func (e *Editor) Mode() tool.Mode {
	return e.state.Mode
}

// SetMode switches the active tool. An unfinished gesture is abandoned
// and its preview discarded. Invalid modes are ignored.
func (e *Editor) SetMode(m tool.Mode) {
	if !m.Valid() || m == e.state.Mode {
		return
	}
	if e.active {
		e.canvas.Discard()
		e.active = false
	}
	pixed.Logger().Info("editor: tool selected", "mode", m, "previous", e.state.Mode)
	e.state.Mode = m
}

// Press starts a gesture at window position (x, y). Presses outside the
// canvas only update the cached pointer position.
func (e *Editor) Press(x, y float64, b tool.Button) {
	m := e.track(x, y)
	if !e.canvas.HitTest(m.WorldX, m.WorldY) {
		return
	}

	e.active = true
	e.state.Begin = m.Cell
	e.state.End = m.Cell
	if h := e.handlers[e.state.Mode]; h.press != nil {
		h.press(e, b)
	}
}

// Drag continues the current gesture to window position (x, y).
// Drags without a gesture in progress are ignored.
func (e *Editor) Drag(x, y float64, b tool.Button) {
	m := e.track(x, y)
	if !e.active {
		return
	}

	e.state.End = m.Cell
	if h := e.handlers[e.state.Mode]; h.drag != nil {
		h.drag(e, b)
	}
}

// Release ends the current gesture and commits the preview layer.
// It returns the number of cells committed.
func (e *Editor) Release(x, y float64, _ tool.Button) int {
	e.track(x, y)
	e.active = false
	return e.canvas.Commit()
}

// Motion records a pointer move without a button held and reports
// whether the pointer is over the canvas.
func (e *Editor) Motion(x, y float64) bool {
	m := e.track(x, y)
	return e.canvas.HitTest(m.WorldX, m.WorldY)
}

// Scroll zooms around window position (x, y). Positive dy zooms in.
// It reports whether the view changed.
func (e *Editor) Scroll(x, y, dy float64) bool {
	return e.cam.Zoom(x, y, camera.DirectionOf(dy))
}

// Resize informs the camera of a new window size.
func (e *Editor) Resize(width, height int) bool {
	return e.cam.Resize(width, height)
}

// track caches the pointer position in every coordinate space.
func (e *Editor) track(x, y float64) tool.Mouse {
	wx, wy := e.cam.WindowToWorld(x, y)
	e.state.Mouse = tool.Mouse{
		X:      x,
		Y:      y,
		WorldX: wx,
		WorldY: wy,
		Cell:   e.canvas.Geometry().WorldToCell(wx, wy),
	}
	return e.state.Mouse
}
