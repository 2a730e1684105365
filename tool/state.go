package tool

import (
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/pixed"
)

// Mode selects the active tool.
type Mode int

const (
	// ModePencil draws freehand lines into the preview layer.
	ModePencil Mode = iota

	// ModeEraser clears committed cells under the pointer.
	ModeEraser

	// ModeBucket flood-fills the committed region under the pointer.
	ModeBucket

	// ModeLine draws a straight line from the press to the pointer.
	ModeLine

	// ModeRectangle draws a rectangle outline from the press to the pointer.
	ModeRectangle

	// NumModes is the number of tool modes.
	NumModes
)

var modeNames = [NumModes]string{
	ModePencil:    "pencil",
	ModeEraser:    "eraser",
	ModeBucket:    "bucket",
	ModeLine:      "line",
	ModeRectangle: "rectangle",
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= 0 && m < NumModes
}

// ParseMode returns the mode with the given name, ignoring case.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if strings.EqualFold(n, name) {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("tool: unknown mode %q", name)
}

// Button is the pointer button driving a gesture.
type Button int

const (
	// ButtonPrimary paints with the primary color (usually the left button).
	ButtonPrimary Button = iota

	// ButtonSecondary paints with the secondary color (usually the right button).
	ButtonSecondary

	// ButtonOther is any button without a tool binding.
	ButtonOther
)

// Mouse caches the last pointer position in every coordinate space.
type Mouse struct {
	// Window position in pixels.
	X, Y float64

	// World position.
	WorldX, WorldY float64

	// Canvas cell under the pointer. May lie outside the canvas.
	Cell image.Point
}

// State is the tool state shared across pointer events.
type State struct {
	Mode      Mode
	Primary   pixed.Color
	Secondary pixed.Color

	// Begin and End are the canvas cells of the current drag segment.
	Begin, End image.Point

	Mouse Mouse
}

// NewState returns a pencil state with the given colors.
func NewState(primary, secondary pixed.Color) *State {
	return &State{
		Mode:      ModePencil,
		Primary:   primary,
		Secondary: secondary,
	}
}

// ColorFor returns the paint color bound to button b.
// The second result is false for buttons without a color.
func (s *State) ColorFor(b Button) (pixed.Color, bool) {
	switch b {
	case ButtonPrimary:
		return s.Primary, true
	case ButtonSecondary:
		return s.Secondary, true
	default:
		return pixed.Color{}, false
	}
}

// SwapColors exchanges the primary and secondary colors.
func (s *State) SwapColors() {
	s.Primary, s.Secondary = s.Secondary, s.Primary
}
