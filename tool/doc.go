// Package tool implements the cell rasterization behind the editor's
// tools and the state shared between pointer events.
//
// The algorithms are pure functions over canvas-space points:
//
//   - [Line]: Bresenham line between two cells, endpoints included
//   - [FloodFill]: 4-connected region of equal cells around a seed
//   - [Rectangle]: border cells of the rectangle spanned by two corners
//
// None of them mutate a canvas; callers decide what to write where.
package tool
