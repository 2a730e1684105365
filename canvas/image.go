// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/pixed"
)

// Image returns the canvas as it would appear on screen: the
// background, the committed layer over it and the preview layer on top.
// Image rows run top to bottom, so pixel (x, 0) is canvas cell
// (x, Height-1).
func (c *Canvas) Image() *image.NRGBA {
	b := c.committed.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, image.NewUniform(c.background.NRGBA()), image.Point{}, draw.Src)
	draw.Draw(dst, b, layerImage(c.committed), image.Point{}, draw.Over)
	draw.Draw(dst, b, layerImage(c.preview), image.Point{}, draw.Over)
	return dst
}

// LayerImage returns one layer alone, with empty cells transparent.
// It returns nil for an unknown layer.
func (c *Canvas) LayerImage(l Layer) *image.NRGBA {
	g := c.grid(l)
	if g == nil {
		return nil
	}
	return layerImage(g)
}

// layerImage converts a grid to an image. Storage rows already run top
// to bottom, which matches image rows.
func layerImage(g *Grid) *image.NRGBA {
	img := image.NewNRGBA(g.Bounds())
	for i, cell := range g.cells {
		col, ok := cell.Color()
		if !ok {
			continue
		}
		o := i * 4
		img.Pix[o+0] = col.R
		img.Pix[o+1] = col.G
		img.Pix[o+2] = col.B
		img.Pix[o+3] = col.A
	}
	return img
}

// ColorAt returns the on-screen color of canvas cell p, resolving the
// preview, committed and background layers in that order. Partially
// transparent cells are not blended; use Image for that.
func (c *Canvas) ColorAt(p image.Point) pixed.Color {
	if col, ok := c.preview.At(p).Color(); ok {
		return col
	}
	if col, ok := c.committed.At(p).Color(); ok {
		return col
	}
	return c.background
}
