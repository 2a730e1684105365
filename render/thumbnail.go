// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail scales src by an integer factor with nearest-neighbor
// sampling, so every source pixel becomes a crisp scale x scale block.
func Thumbnail(src image.Image, scale int) (*image.NRGBA, error) {
	b := src.Bounds()
	if scale < 1 || b.Empty() {
		return nil, fmt.Errorf("%w: %dx%d scaled by %d", ErrInvalidDimensions, b.Dx(), b.Dy(), scale)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}
