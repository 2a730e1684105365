package editor

import (
	"image"

	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/canvas"
	"github.com/gogpu/pixed/tool"
)

// handler holds the gesture callbacks of one tool mode. A nil callback
// ignores the event.
type handler struct {
	press func(e *Editor, b tool.Button)
	drag  func(e *Editor, b tool.Button)
}

func defaultHandlers() [tool.NumModes]handler {
	return [tool.NumModes]handler{
		tool.ModePencil:    {press: pencilPress, drag: pencilDrag},
		tool.ModeEraser:    {press: eraserPress, drag: eraserDrag},
		tool.ModeBucket:    {press: bucketPress},
		tool.ModeLine:      {press: shapePress, drag: shapeDrag(tool.Line)},
		tool.ModeRectangle: {press: shapePress, drag: shapeDrag(tool.Rectangle)},
	}
}

func pencilPress(e *Editor, b tool.Button) {
	if col, ok := e.state.ColorFor(b); ok {
		e.canvas.Set(e.state.Begin, col, canvas.Preview)
	}
}

// pencilDrag draws the segment from the last drag position, then moves
// the segment start forward.
func pencilDrag(e *Editor, b tool.Button) {
	if e.state.End == e.state.Begin {
		return
	}
	if col, ok := e.state.ColorFor(b); ok {
		e.paint(tool.Line(e.state.Begin, e.state.End), col)
	}
	e.state.Begin = e.state.End
}

func eraserPress(e *Editor, b tool.Button) {
	if b == tool.ButtonPrimary {
		e.canvas.Clear(e.state.Begin, canvas.Committed)
	}
}

func eraserDrag(e *Editor, b tool.Button) {
	if e.state.End == e.state.Begin {
		return
	}
	if b == tool.ButtonPrimary {
		for _, p := range tool.Line(e.state.Begin, e.state.End) {
			e.canvas.Clear(p, canvas.Committed)
		}
	}
	e.state.Begin = e.state.End
}

// bucketPress previews the fill of the committed region under the
// pointer; Release commits it.
func bucketPress(e *Editor, b tool.Button) {
	col, ok := e.state.ColorFor(b)
	if !ok {
		return
	}
	area := tool.FloodFill(e.state.Begin, e.canvas.Layer(canvas.Committed))
	pixed.Logger().Debug("editor: fill", "origin", e.state.Begin, "cells", len(area))
	e.paint(area, col)
}

func shapePress(e *Editor, b tool.Button) {
	if col, ok := e.state.ColorFor(b); ok {
		e.canvas.Set(e.state.Begin, col, canvas.Preview)
	}
}

// shapeDrag returns a rubber-band handler: the preview is redrawn from
// the press position to the pointer on every drag.
func shapeDrag(shape func(a, b image.Point) []image.Point) func(*Editor, tool.Button) {
	return func(e *Editor, b tool.Button) {
		col, ok := e.state.ColorFor(b)
		if !ok {
			return
		}
		e.canvas.Discard()
		e.paint(shape(e.state.Begin, e.state.End), col)
	}
}

// paint writes col to every cell of pts in the preview layer. Cells
// outside the canvas are skipped by the canvas itself.
func (e *Editor) paint(pts []image.Point, col pixed.Color) {
	for _, p := range pts {
		e.canvas.Set(p, col, canvas.Preview)
	}
}
