package tool

import "image"

// Rectangle returns the border cells of the rectangle with opposite
// corners a and b, both inclusive. The corners may be given in any
// order. Every border cell appears exactly once: the top and bottom
// rows span the full width, the side columns only the rows between.
func Rectangle(a, b image.Point) []image.Point {
	r := image.Rectangle{Min: a, Max: b}.Canon()
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y

	pts := make([]image.Point, 0, 2*(x1-x0+1)+2*max(y1-y0-1, 0))
	for x := x0; x <= x1; x++ {
		pts = append(pts, image.Pt(x, y0))
		if y1 != y0 {
			pts = append(pts, image.Pt(x, y1))
		}
	}
	for y := y0 + 1; y < y1; y++ {
		pts = append(pts, image.Pt(x0, y))
		if x1 != x0 {
			pts = append(pts, image.Pt(x1, y))
		}
	}
	return pts
}
