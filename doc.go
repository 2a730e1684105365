// Package pixed is the core of a pixel-art editor.
//
// # Overview
//
// pixed keeps a fixed-size grid of colored cells and mutates it through
// tools (pencil, eraser, bucket, line, rectangle). Tool output is drawn
// into a preview layer first and committed to the image when the
// gesture ends. Pointer input is mapped to exact grid cells under any
// zoom and pan state.
//
// The root package holds the types shared by every sub-package: [Color],
// the [Cell] variant that is either empty or holds a color, and the
// package-wide logger.
//
// # Architecture
//
//   - camera: window, world and canvas coordinate transforms; zoom and resize
//   - canvas: committed and preview grids, commit, hit testing, quad notifications
//   - tool: line, flood fill and rectangle rasterization, tool modes
//   - editor: pointer and scroll handlers tying the above together
//   - render: quad stores and a software rasterizer built on gogpu/gg
//   - config: startup constants, TOML loading and validation
//
// # Coordinate System
//
// Window space has its origin at the bottom-left corner of the window,
// X increasing right and Y increasing up. World space is the same
// orientation, scaled and translated by the camera. Canvas space is the
// integer cell grid, (0,0) being the bottom-left cell.
//
// # Rendering
//
// The core never draws. Every cell mutation is reported to a
// canvas.Batch as an add-quad or remove-quad call; the front end owns
// the GPU or software side.
package pixed

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
