// Package config holds the startup settings of the editor.
//
// Settings are fixed once the editor is constructed. Default returns
// the built-in values; Load overlays a TOML file on top of them:
//
//	title = "pix31"
//
//	[window]
//	width = 1280
//	height = 720
//
//	[canvas]
//	width = 128
//	height = 128
//	background = "#ffffff"
//
//	[colors]
//	primary = "#000000"
//	secondary = "#ff0000"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/camera"
)

// ErrInvalid is returned by Validate, Parse and Load for settings that
// cannot be used.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the full set of startup settings.
type Config struct {
	Title   string  `toml:"title"`
	Window  Window  `toml:"window"`
	Toolbar Toolbar `toml:"toolbar"`
	Zoom    Zoom    `toml:"zoom"`
	Canvas  Canvas  `toml:"canvas"`
	Colors  Colors  `toml:"colors"`
}

// Window is the initial window size. It also fixes the world-space
// origin of the canvas for the lifetime of the editor.
type Window struct {
	Width      int         `toml:"width"`
	Height     int         `toml:"height"`
	Background pixed.Color `toml:"background"`
}

// Toolbar holds the toolbar band heights in window pixels.
type Toolbar struct {
	Top        int         `toml:"top"`
	Bottom     int         `toml:"bottom"`
	Background pixed.Color `toml:"background"`
}

// Zoom holds the zoom factors and limits. A zoom level is world units
// per window pixel, so In is below 1 and Out above it.
type Zoom struct {
	In  float64 `toml:"in"`
	Out float64 `toml:"out"`
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// Canvas is the pixel grid size and the color of empty cells.
type Canvas struct {
	Width      int         `toml:"width"`
	Height     int         `toml:"height"`
	Background pixed.Color `toml:"background"`
}

// Colors are the initial paint colors.
type Colors struct {
	Primary   pixed.Color `toml:"primary"`
	Secondary pixed.Color `toml:"secondary"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Title: "pix31",
		Window: Window{
			Width:      960,
			Height:     540,
			Background: pixed.RGB(33, 33, 33),
		},
		Toolbar: Toolbar{
			Top:        camera.DefaultTopBand,
			Bottom:     camera.DefaultBottomBand,
			Background: pixed.RGB(50, 50, 50),
		},
		Zoom: Zoom{
			In:  camera.DefaultZoomIn,
			Out: camera.DefaultZoomOut,
			Min: camera.DefaultZoomMin,
			Max: camera.DefaultZoomMax,
		},
		Canvas: Canvas{
			Width:      64,
			Height:     64,
			Background: pixed.White,
		},
		Colors: Colors{
			Primary:   pixed.Black,
			Secondary: pixed.Red,
		},
	}
}

// Load reads a TOML file and overlays it on Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML settings over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings describe a usable editor.
// All problems are reported, joined, each wrapping ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		bad("canvas size %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Toolbar.Top < 0 || c.Toolbar.Bottom < 0 {
		bad("toolbar heights %d/%d", c.Toolbar.Top, c.Toolbar.Bottom)
	} else if c.Toolbar.Top+c.Toolbar.Bottom >= c.Window.Height {
		bad("toolbars (%d+%d) cover the %d pixel window", c.Toolbar.Top, c.Toolbar.Bottom, c.Window.Height)
	}

	z := c.Zoom
	switch {
	case z.In <= 0 || z.In >= 1:
		bad("zoom in factor %v must be in (0, 1)", z.In)
	case z.Out <= 1:
		bad("zoom out factor %v must be above 1", z.Out)
	case z.In*z.Out != 1:
		bad("zoom factors %v and %v are not reciprocal", z.In, z.Out)
	}
	if z.Min <= 0 || z.Min > 1 || z.Max < 1 {
		bad("zoom limits [%v, %v] must contain 1", z.Min, z.Max)
	}

	return errors.Join(errs...)
}

// Geometry returns the world placement of the canvas.
func (c Config) Geometry() camera.Geometry {
	return camera.NewGeometry(c.Canvas.Width, c.Canvas.Height, c.Window.Width, c.Window.Height)
}

// CameraOptions returns the camera options for these settings.
func (c Config) CameraOptions() []camera.Option {
	return []camera.Option{
		camera.WithZoomFactors(c.Zoom.In, c.Zoom.Out),
		camera.WithZoomLimits(c.Zoom.Min, c.Zoom.Max),
		camera.WithToolbarBands(c.Toolbar.Top, c.Toolbar.Bottom),
	}
}

// NewCamera returns a camera for the initial window.
func (c Config) NewCamera() *camera.Camera {
	return camera.New(c.Window.Width, c.Window.Height, c.Geometry(), c.CameraOptions()...)
}
