package pixed

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidHex is returned when a hex color string cannot be parsed.
var ErrInvalidHex = errors.New("pixed: invalid hex color")

// Color is a non-premultiplied 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Hex returns c as "#rrggbb", or "#rrggbbaa" when c is not opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", each with an
// optional leading '#'.
func ParseHex(s string) (Color, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v [4]uint8
	v[3] = 255

	switch len(hex) {
	case 3, 4: // RGB, RGBA
		for i := range len(hex) {
			n, ok := hexDigit(hex[i])
			if !ok {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
			}
			v[i] = n * 17
		}
	case 6, 8: // RRGGBB, RRGGBBAA
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			if !ok1 || !ok2 {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for package-level color tables.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
	Red   = RGB(255, 0, 0)
	Green = RGB(0, 255, 0)
	Blue  = RGB(0, 0, 255)
)

// Cell is the content of one grid cell: either empty or a color.
// The zero Cell is empty.
type Cell struct {
	color Color
	set   bool
}

// Empty is the cell holding no color.
var Empty Cell

// Filled returns a cell holding c.
func Filled(c Color) Cell {
	return Cell{color: c, set: true}
}

// IsEmpty reports whether the cell holds no color.
func (c Cell) IsEmpty() bool {
	return !c.set
}

// Color returns the cell color and whether the cell holds one.
func (c Cell) Color() (Color, bool) {
	return c.color, c.set
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	if !c.set {
		return "empty"
	}
	return c.color.Hex()
}
