package tool

import (
	"testing"

	"github.com/gogpu/pixed"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{ModePencil, "pencil"},
		{ModeEraser, "eraser"},
		{ModeBucket, "bucket"},
		{ModeLine, "line"},
		{ModeRectangle, "rectangle"},
		{NumModes, "Mode(5)"},
		{Mode(-1), "Mode(-1)"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.m), got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	for m := range NumModes {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if got, err := ParseMode("Eraser"); err != nil || got != ModeEraser {
		t.Errorf("ParseMode(Eraser) = %v, %v", got, err)
	}
	if _, err := ParseMode("airbrush"); err == nil {
		t.Error("ParseMode(airbrush) should fail")
	}
}

func TestState_ColorFor(t *testing.T) {
	s := NewState(pixed.Black, pixed.Red)
	if s.Mode != ModePencil {
		t.Errorf("default Mode = %v, want pencil", s.Mode)
	}

	if c, ok := s.ColorFor(ButtonPrimary); !ok || c != pixed.Black {
		t.Errorf("ColorFor(primary) = %v, %v", c, ok)
	}
	if c, ok := s.ColorFor(ButtonSecondary); !ok || c != pixed.Red {
		t.Errorf("ColorFor(secondary) = %v, %v", c, ok)
	}
	if _, ok := s.ColorFor(ButtonOther); ok {
		t.Error("ColorFor(other) reported a color")
	}

	s.SwapColors()
	if s.Primary != pixed.Red || s.Secondary != pixed.Black {
		t.Error("SwapColors did not swap")
	}
}
