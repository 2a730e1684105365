// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

// Default camera settings.
const (
	// DefaultZoomIn multiplies the zoom level when scrolling in.
	DefaultZoomIn = 0.5

	// DefaultZoomOut multiplies the zoom level when scrolling out.
	// It is the exact reciprocal of DefaultZoomIn.
	DefaultZoomOut = 2.0

	// DefaultZoomMin is the lowest zoom level (3200% magnification).
	DefaultZoomMin = 0.03125

	// DefaultZoomMax is the highest zoom level (50% magnification).
	DefaultZoomMax = 2.0

	// DefaultTopBand is the height of the top toolbar in window pixels.
	DefaultTopBand = 80

	// DefaultBottomBand is the height of the bottom toolbar in window pixels.
	DefaultBottomBand = 20
)

// Option configures a Camera during creation.
//
// Example:
//
//	cam := camera.New(960, 540, geom,
//	    camera.WithZoomLimits(0.125, 1),
//	    camera.WithToolbarBands(0, 0))
type Option func(*options)

// options holds the immutable camera configuration.
type options struct {
	zoomIn, zoomOut  float64
	zoomMin, zoomMax float64
	topBand          float64
	bottomBand       float64
}

// defaultOptions returns the default camera options.
func defaultOptions() options {
	return options{
		zoomIn:     DefaultZoomIn,
		zoomOut:    DefaultZoomOut,
		zoomMin:    DefaultZoomMin,
		zoomMax:    DefaultZoomMax,
		topBand:    DefaultTopBand,
		bottomBand: DefaultBottomBand,
	}
}

// WithZoomFactors sets the factors applied to the zoom level when
// scrolling in and out. Use exact reciprocals (ideally powers of two)
// so that zooming in and back out restores the previous level.
func WithZoomFactors(in, out float64) Option {
	return func(o *options) {
		o.zoomIn = in
		o.zoomOut = out
	}
}

// WithZoomLimits sets the allowed zoom level range. A camera starts at
// level 1, so a range that does not contain 1 is ignored and the
// default limits stay in effect.
func WithZoomLimits(lo, hi float64) Option {
	return func(o *options) {
		if lo <= 0 || lo > 1 || hi < 1 {
			return
		}
		o.zoomMin = lo
		o.zoomMax = hi
	}
}

// WithToolbarBands sets the heights of the top and bottom toolbars.
// Scrolling with the cursor inside either band does not zoom.
func WithToolbarBands(top, bottom int) Option {
	return func(o *options) {
		o.topBand = float64(top)
		o.bottomBand = float64(bottom)
	}
}
