// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import (
	"image"
	"math"
)

// View is a snapshot of the camera state. The transform functions in
// this file are pure given a View.
type View struct {
	// World-space viewport bounds.
	Left, Right, Bottom, Top float64

	// ZoomLevel is world units per window pixel; 1 is unscaled.
	ZoomLevel float64

	// Viewport extents in world units.
	ZoomedWidth, ZoomedHeight float64

	// Live window size in pixels.
	WindowWidth, WindowHeight float64
}

// WindowToWorld maps a window pixel to world space.
func WindowToWorld(x, y float64, v View) (wx, wy float64) {
	nx := x / v.WindowWidth
	ny := y / v.WindowHeight
	return v.Left + nx*v.ZoomedWidth, v.Bottom + ny*v.ZoomedHeight
}

// WorldToWindow is the inverse of WindowToWorld.
func WorldToWindow(wx, wy float64, v View) (x, y float64) {
	nx := (wx - v.Left) / v.ZoomedWidth
	ny := (wy - v.Bottom) / v.ZoomedHeight
	return nx * v.WindowWidth, ny * v.WindowHeight
}

// WorldToCanvas maps a world position to the canvas cell containing it.
//
// refWidth and refHeight are the window size captured at startup, not
// the live size: the camera already absorbs window resizes, so canvas
// space is measured from a fixed origin.
func WorldToCanvas(wx, wy float64, canvasWidth, canvasHeight int, refWidth, refHeight float64) image.Point {
	return image.Point{
		X: int(math.Floor(wx - refWidth/2 + float64(canvasWidth)/2)),
		Y: int(math.Floor(wy - refHeight/2 + float64(canvasHeight)/2)),
	}
}

// Geometry places a canvas of Width x Height cells in world space.
// The canvas is centered on the reference window.
type Geometry struct {
	Width, Height       int
	RefWidth, RefHeight float64
}

// NewGeometry returns the geometry of a width x height canvas centered
// in a refWidth x refHeight window.
func NewGeometry(width, height, refWidth, refHeight int) Geometry {
	return Geometry{
		Width:     width,
		Height:    height,
		RefWidth:  float64(refWidth),
		RefHeight: float64(refHeight),
	}
}

// Origin returns the world position of the canvas's bottom-left corner.
func (g Geometry) Origin() (x, y float64) {
	return g.RefWidth/2 - float64(g.Width)/2, g.RefHeight/2 - float64(g.Height)/2
}

// Center returns the world position of the canvas center.
func (g Geometry) Center() (x, y float64) {
	return g.RefWidth / 2, g.RefHeight / 2
}

// Contains reports whether the world point lies strictly inside the
// canvas bounding box.
func (g Geometry) Contains(wx, wy float64) bool {
	cx, cy := g.Center()
	hw, hh := float64(g.Width)/2, float64(g.Height)/2
	return cx-hw < wx && wx < cx+hw && cy-hh < wy && wy < cy+hh
}

// WorldToCell maps a world position to a canvas cell.
func (g Geometry) WorldToCell(wx, wy float64) image.Point {
	return WorldToCanvas(wx, wy, g.Width, g.Height, g.RefWidth, g.RefHeight)
}

// CellToWorld returns the world position of the bottom-left corner of
// cell p. Cells are one world unit square.
func (g Geometry) CellToWorld(p image.Point) (wx, wy float64) {
	ox, oy := g.Origin()
	return ox + float64(p.X), oy + float64(p.Y)
}
