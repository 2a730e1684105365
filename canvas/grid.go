// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image"

	"github.com/gogpu/pixed"
)

// Reader is read-only access to a grid of cells in canvas space.
type Reader interface {
	Width() int
	Height() int
	At(p image.Point) pixed.Cell
}

// Grid is a fixed-size rectangle of cells.
//
// Rows are stored top to bottom: canvas row y lives at storage row
// height-1-y.
type Grid struct {
	width  int
	height int
	cells  []pixed.Cell
}

// NewGrid creates an empty grid with the given dimensions.
// Negative dimensions are treated as zero.
func NewGrid(width, height int) *Grid {
	width, height = max(width, 0), max(height, 0)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]pixed.Cell, width*height),
	}
}

// Width returns the width of the grid.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid.
func (g *Grid) Height() int {
	return g.height
}

// Bounds returns the canvas-space rectangle covered by the grid.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// In reports whether p is inside the grid.
func (g *Grid) In(p image.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// index returns the storage index of canvas position p.
// The caller must check In first.
func (g *Grid) index(p image.Point) int {
	row := g.height - 1 - p.Y
	return row*g.width + p.X
}

// At returns the cell at p, or pixed.Empty if p is outside the grid.
func (g *Grid) At(p image.Point) pixed.Cell {
	if !g.In(p) {
		return pixed.Empty
	}
	return g.cells[g.index(p)]
}

// Set stores c at p. It reports false, leaving the grid unchanged, if
// p is outside the grid.
func (g *Grid) Set(p image.Point, c pixed.Cell) bool {
	if !g.In(p) {
		return false
	}
	g.cells[g.index(p)] = c
	return true
}

// Fill sets every cell to c.
func (g *Grid) Fill(c pixed.Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Count returns the number of non-empty cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  append([]pixed.Cell(nil), g.cells...),
	}
}

// Each calls fn for every non-empty cell, in storage order.
func (g *Grid) Each(fn func(p image.Point, c pixed.Cell)) {
	for i, c := range g.cells {
		if c.IsEmpty() {
			continue
		}
		row, x := i/g.width, i%g.width
		fn(image.Pt(x, g.height-1-row), c)
	}
}
