// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/camera"
)

// ErrInvalidDimensions is returned when the view has no pixels.
var ErrInvalidDimensions = errors.New("render: invalid dimensions")

// Scene is everything Rasterize draws.
type Scene struct {
	// View is the camera state; its window size is the image size.
	View camera.View

	// Geometry places the canvas background in world space.
	Geometry camera.Geometry

	// Quads are drawn over the canvas background in draw order.
	// May be nil.
	Quads *QuadSet

	// Window fills the area around the canvas.
	Window pixed.Color

	// Canvas fills the canvas rectangle under the quads.
	Canvas pixed.Color
}

// Rasterize draws the scene as seen through its view. Image rows run
// top to bottom, so window row 0 (the bottom) is the last image row.
func Rasterize(s Scene) (image.Image, error) {
	w, h := int(s.View.WindowWidth), int(s.View.WindowHeight)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, w, h)
	}

	dc := gg.NewContext(w, h)
	defer func() {
		_ = dc.Close()
	}()

	dc.ClearWithColor(gg.FromColor(s.Window))

	ox, oy := s.Geometry.Origin()
	if err := fillWorldRect(dc, s.View, ox, oy, float64(s.Geometry.Width), float64(s.Geometry.Height), s.Canvas); err != nil {
		return nil, err
	}

	if s.Quads != nil {
		for _, q := range s.Quads.Quads() {
			if err := fillWorldRect(dc, s.View, q.X, q.Y, 1, 1, q.Color); err != nil {
				return nil, err
			}
		}
	}

	if err := dc.FlushGPU(); err != nil {
		pixed.Logger().Warn("render: flush failed", "err", err)
	}
	return dc.Image(), nil
}

// fillWorldRect fills the world-space rectangle with bottom-left corner
// (wx, wy) and size ww x wh.
func fillWorldRect(dc *gg.Context, v camera.View, wx, wy, ww, wh float64, c pixed.Color) error {
	x0, y0 := camera.WorldToWindow(wx, wy, v)
	x1, y1 := camera.WorldToWindow(wx+ww, wy+wh, v)

	// Window Y grows up, image Y grows down.
	top := float64(dc.Height()) - y1

	dc.SetColor(c)
	dc.DrawRectangle(x0, top, x1-x0, y1-y0)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("render: fill: %w", err)
	}
	return nil
}
