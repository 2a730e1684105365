// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the drawing side of the editor's quad
// notifications.
//
// The canvas package reports every cell change as canvas.Batch calls
// and never draws. This package supplies the receiving end:
//
//   - QuadSet: an in-memory store of live quads, keyed per cell and
//     layer, that front ends iterate each frame
//   - Rasterize: a software renderer that draws the camera's view of a
//     QuadSet into an image using gogpu/gg
//
// # Usage
//
//	quads := render.NewQuadSet()
//	ed := editor.NewFromConfig(cfg, quads)
//	...
//	img, err := render.Rasterize(render.Scene{
//	    View:     ed.Camera().View(),
//	    Geometry: ed.Canvas().Geometry(),
//	    Quads:    quads,
//	    Window:   cfg.Window.Background,
//	    Canvas:   cfg.Canvas.Background,
//	})
package render
