// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas holds the pixel data of an image being edited.
//
// A Canvas owns two grids of the same size: the committed layer, which
// is the image itself, and the preview layer, which holds the output of
// the gesture in progress. Tools draw into the preview layer; Commit
// moves every pending preview cell into the committed layer and empties
// the preview.
//
// # Coordinates
//
// Cells are addressed in canvas space: (0,0) is the bottom-left cell,
// X grows right and Y grows up. Storage rows are flipped, so row 0 of
// the backing slice is the top row of the image. Reads outside the
// canvas return pixed.Empty and writes outside it are ignored.
//
// # Quads
//
// Every mutation is reported synchronously to a Batch as remove-quad
// and add-quad calls, one quad per non-empty cell per layer. The Batch
// owns all drawing; the canvas never renders.
package canvas
