package tool

import "image"

// Line returns the cells of the Bresenham line from a to b, in order.
// The first element is a and the last is b; consecutive cells are
// 8-connected. Line(p, p) is [p].
func Line(a, b image.Point) []image.Point {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)

	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	pts := make([]image.Point, 0, max(dx, dy)+1)
	x, y := a.X, a.Y

	// err holds twice the decision variable so that its initial value,
	// half the major delta, stays integral.
	if dx > dy {
		err := dx
		for x != b.X {
			pts = append(pts, image.Pt(x, y))
			err -= 2 * dy
			if err < 0 {
				y += sy
				err += 2 * dx
			}
			x += sx
		}
	} else {
		err := dy
		for y != b.Y {
			pts = append(pts, image.Pt(x, y))
			err -= 2 * dx
			if err < 0 {
				x += sx
				err += 2 * dy
			}
			y += sy
		}
	}

	return append(pts, image.Pt(x, y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
