package tool

import (
	"image"

	"github.com/gogpu/pixed"
)

// Source is read access to a grid of cells in canvas space.
type Source interface {
	Width() int
	Height() int
	At(p image.Point) pixed.Cell
}

// neighbors4 lists the 4-connected offsets in the order they are pushed.
var neighbors4 = [4]image.Point{{0, 1}, {0, -1}, {-1, 0}, {1, 0}}

// FloodFill returns the 4-connected region of cells around origin that
// hold the same cell value as origin, in canvas space. Each cell appears
// once. An origin outside the grid yields nil.
//
// The fill uses an explicit stack, so region size is bounded by memory,
// not goroutine stack depth. src is never written to.
func FloodFill(origin image.Point, src Source) []image.Point {
	w, h := src.Width(), src.Height()
	bounds := image.Rect(0, 0, w, h)
	if !origin.In(bounds) {
		return nil
	}

	target := src.At(origin)

	// match[i] is true while cell i still equals target. Visiting a cell
	// clears it, which keeps the cell from being pushed again.
	match := make([]bool, w*h)
	for y := range h {
		for x := range w {
			match[y*w+x] = src.At(image.Pt(x, y)) == target
		}
	}

	var area []image.Point
	stack := []image.Point{origin}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !match[p.Y*w+p.X] {
			continue
		}
		area = append(area, p)
		match[p.Y*w+p.X] = false

		for _, d := range neighbors4 {
			q := p.Add(d)
			if q.In(bounds) && match[q.Y*w+q.X] {
				stack = append(stack, q)
			}
		}
	}
	return area
}
