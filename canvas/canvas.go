// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image"

	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/camera"
)

// Option configures a Canvas during creation.
type Option func(*Canvas)

// WithBatch sets the Batch receiving quad notifications.
// Without it, notifications are discarded.
func WithBatch(b Batch) Option {
	return func(c *Canvas) {
		if b != nil {
			c.batch = b
		}
	}
}

// WithBackground sets the color shown under empty cells by Image.
// The default is opaque white.
func WithBackground(bg pixed.Color) Option {
	return func(c *Canvas) {
		c.background = bg
	}
}

// Canvas owns the committed and preview grids of an image.
//
// All mutation goes through Set, Clear, Commit and Discard, each of
// which keeps the Batch in sync.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	geom       camera.Geometry
	committed  *Grid
	preview    *Grid
	batch      Batch
	background pixed.Color
}

// New creates an empty canvas with the size and world placement of geom.
func New(geom camera.Geometry, opts ...Option) *Canvas {
	c := &Canvas{
		geom:       geom,
		committed:  NewGrid(geom.Width, geom.Height),
		preview:    NewGrid(geom.Width, geom.Height),
		batch:      nopBatch{},
		background: pixed.White,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	return c.committed.Width()
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	return c.committed.Height()
}

// Geometry returns the world placement of the canvas.
func (c *Canvas) Geometry() camera.Geometry {
	return c.geom
}

// Background returns the color shown under empty cells.
func (c *Canvas) Background() pixed.Color {
	return c.background
}

// Layer returns read-only access to one layer, or nil for a value that
// is neither Committed nor Preview.
func (c *Canvas) Layer(l Layer) Reader {
	g := c.grid(l)
	if g == nil {
		return nil
	}
	return g
}

// At returns the cell at p in layer l.
func (c *Canvas) At(p image.Point, l Layer) pixed.Cell {
	g := c.grid(l)
	if g == nil {
		return pixed.Empty
	}
	return g.At(p)
}

// Set writes color col at p in layer l and replaces the cell's quad.
// Positions outside the canvas and unknown layers are ignored; Set
// reports whether the write happened.
func (c *Canvas) Set(p image.Point, col pixed.Color, l Layer) bool {
	g := c.grid(l)
	if g == nil || !g.In(p) {
		return false
	}

	key := QuadKey{Layer: l, X: p.X, Y: p.Y}
	if !g.At(p).IsEmpty() {
		c.batch.RemoveQuad(key)
	}
	g.Set(p, pixed.Filled(col))

	wx, wy := c.geom.CellToWorld(p)
	c.batch.AddQuad(key, wx, wy, col)
	return true
}

// Clear empties the cell at p in layer l and removes its quad.
// Clear reports whether the cell held a color.
func (c *Canvas) Clear(p image.Point, l Layer) bool {
	g := c.grid(l)
	if g == nil || g.At(p).IsEmpty() {
		return false
	}
	g.Set(p, pixed.Empty)
	c.batch.RemoveQuad(QuadKey{Layer: l, X: p.X, Y: p.Y})
	return true
}

// Commit moves every non-empty preview cell into the committed layer
// and empties the preview. It returns the number of cells moved.
//
// Afterwards every preview cell is empty and each moved value has been
// written to the committed layer exactly once.
func (c *Canvas) Commit() int {
	n := 0
	c.preview.Each(func(p image.Point, cell pixed.Cell) {
		col, _ := cell.Color()
		c.Set(p, col, Committed)
		c.Clear(p, Preview)
		n++
	})
	if n > 0 {
		pixed.Logger().Debug("canvas: commit", "cells", n)
	}
	return n
}

// Discard empties the preview layer without committing it and returns
// the number of cells dropped.
func (c *Canvas) Discard() int {
	n := 0
	c.preview.Each(func(p image.Point, _ pixed.Cell) {
		c.Clear(p, Preview)
		n++
	})
	return n
}

// HitTest reports whether world position (wx, wy) lies strictly inside
// the canvas.
func (c *Canvas) HitTest(wx, wy float64) bool {
	return c.geom.Contains(wx, wy)
}

// grid returns the storage of layer l, or nil for an unknown layer.
func (c *Canvas) grid(l Layer) *Grid {
	switch l {
	case Committed:
		return c.committed
	case Preview:
		return c.preview
	default:
		return nil
	}
}
