// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import (
	"image"

	"github.com/gogpu/pixed"
)

// Direction is the direction of a scroll event.
type Direction int

const (
	// ScrollNone leaves the zoom unchanged.
	ScrollNone Direction = iota

	// ScrollIn magnifies the canvas.
	ScrollIn

	// ScrollOut shrinks the canvas.
	ScrollOut
)

// DirectionOf maps a vertical scroll delta to a Direction.
// Scrolling up (dy > 0) zooms in.
func DirectionOf(dy float64) Direction {
	switch {
	case dy > 0:
		return ScrollIn
	case dy < 0:
		return ScrollOut
	default:
		return ScrollNone
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case ScrollIn:
		return "in"
	case ScrollOut:
		return "out"
	default:
		return "none"
	}
}

// Camera owns the pan and zoom state of the editor viewport.
//
// The state only changes through Zoom and Resize. The invariants
// ZoomedWidth == WindowWidth * ZoomLevel (and likewise for height) and
// zoomMin <= ZoomLevel <= zoomMax hold after every transition.
//
// Camera is NOT safe for concurrent use.
type Camera struct {
	view View
	geom Geometry
	opts options

	// Window size seen by the previous Resize.
	lastWidth, lastHeight float64
}

// New creates a camera for a width x height window showing the canvas
// described by geom. The initial view is unscaled with the world origin
// at the bottom-left corner of the window.
func New(width, height int, geom Geometry, opts ...Option) *Camera {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w, h := float64(width), float64(height)
	return &Camera{
		view: View{
			Left:         0,
			Right:        w,
			Bottom:       0,
			Top:          h,
			ZoomLevel:    1,
			ZoomedWidth:  w,
			ZoomedHeight: h,
			WindowWidth:  w,
			WindowHeight: h,
		},
		geom:       geom,
		opts:       o,
		lastWidth:  w,
		lastHeight: h,
	}
}

// View returns a snapshot of the current camera state.
func (c *Camera) View() View {
	return c.view
}

// Geometry returns the canvas geometry the camera was created with.
func (c *Camera) Geometry() Geometry {
	return c.geom
}

// ZoomLevel returns the current zoom level.
func (c *Camera) ZoomLevel() float64 {
	return c.view.ZoomLevel
}

// ZoomPercent returns the magnification shown to the user, 100 being
// unscaled and 200 twice as large.
func (c *Camera) ZoomPercent() int {
	return int(100 / c.view.ZoomLevel)
}

// WindowToWorld maps a window pixel to world space using the current view.
func (c *Camera) WindowToWorld(x, y float64) (wx, wy float64) {
	return WindowToWorld(x, y, c.view)
}

// WorldToWindow maps a world position to window pixels using the current view.
func (c *Camera) WorldToWindow(wx, wy float64) (x, y float64) {
	return WorldToWindow(wx, wy, c.view)
}

// WindowToCanvas maps a window pixel to the canvas cell under it.
func (c *Camera) WindowToCanvas(x, y float64) image.Point {
	wx, wy := c.WindowToWorld(x, y)
	return c.geom.WorldToCell(wx, wy)
}

// InToolbar reports whether window row y falls inside the top or
// bottom toolbar band.
func (c *Camera) InToolbar(y float64) bool {
	return y > c.view.WindowHeight-c.opts.topBand || y < c.opts.bottomBand
}

// Zoom scales the view around the cursor at window position (x, y).
//
// The world point under the cursor keeps its place on screen. When the
// cursor is not over the canvas, the canvas center is used as the
// pivot instead, so zooming from empty space cannot push the canvas out
// of view. Requests from inside a toolbar band, or that would leave the
// zoom limits, are ignored.
//
// Zoom reports whether the view changed.
func (c *Camera) Zoom(x, y float64, dir Direction) bool {
	var factor float64
	switch dir {
	case ScrollIn:
		factor = c.opts.zoomIn
	case ScrollOut:
		factor = c.opts.zoomOut
	default:
		return false
	}

	log := pixed.Logger()
	if c.InToolbar(y) {
		log.Debug("camera: zoom ignored in toolbar", "y", y)
		return false
	}

	next := c.view.ZoomLevel * factor
	if next < c.opts.zoomMin || next > c.opts.zoomMax {
		log.Debug("camera: zoom limit reached", "level", c.view.ZoomLevel, "dir", dir)
		return false
	}

	fx := x / c.view.WindowWidth
	fy := y / c.view.WindowHeight
	px, py := WindowToWorld(x, y, c.view)

	if !c.geom.Contains(px, py) {
		px, py = c.geom.Center()
		fx = (px - c.view.Left) / c.view.ZoomedWidth
		fy = (py - c.view.Bottom) / c.view.ZoomedHeight
	}

	c.view.ZoomLevel = next
	c.view.ZoomedWidth *= factor
	c.view.ZoomedHeight *= factor
	c.reframe(px, py, fx, fy)

	log.Debug("camera: zoom", "level", next, "left", c.view.Left, "bottom", c.view.Bottom)
	return true
}

// Resize adapts the view to a new window size. The world point at the
// center of the viewport stays at the center, and the zoom level is
// unchanged. Non-positive sizes, as reported for minimized windows,
// are ignored.
//
// Resize reports whether the view changed.
func (c *Camera) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}

	w, h := float64(width), float64(height)
	fx := w / c.lastWidth
	fy := h / c.lastHeight

	const fraction = 0.5
	px, py := WindowToWorld(fraction*c.view.WindowWidth, fraction*c.view.WindowHeight, c.view)

	c.view.ZoomedWidth *= fx
	c.view.ZoomedHeight *= fy
	c.view.WindowWidth = w
	c.view.WindowHeight = h
	c.reframe(px, py, fraction, fraction)

	c.lastWidth = w
	c.lastHeight = h
	return true
}

// reframe places the world point (px, py) at viewport fraction (fx, fy).
func (c *Camera) reframe(px, py, fx, fy float64) {
	v := &c.view
	v.Left = px - fx*v.ZoomedWidth
	v.Right = px + (1-fx)*v.ZoomedWidth
	v.Bottom = py - fy*v.ZoomedHeight
	v.Top = py + (1-fy)*v.ZoomedHeight
}
