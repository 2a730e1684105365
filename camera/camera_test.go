// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import (
	"image"
	"math/rand/v2"
	"testing"
)

// newTestCamera returns the startup camera: 960x540 window, 64x64 canvas.
func newTestCamera(opts ...Option) *Camera {
	return New(960, 540, NewGeometry(64, 64, 960, 540), opts...)
}

func TestNew(t *testing.T) {
	c := newTestCamera()
	want := View{
		Left: 0, Right: 960, Bottom: 0, Top: 540,
		ZoomLevel:   1,
		ZoomedWidth: 960, ZoomedHeight: 540,
		WindowWidth: 960, WindowHeight: 540,
	}
	if got := c.View(); got != want {
		t.Errorf("View() = %+v, want %+v", got, want)
	}
	if got := c.ZoomPercent(); got != 100 {
		t.Errorf("ZoomPercent() = %d, want 100", got)
	}
}

func TestWindowToCanvas_CenterScenario(t *testing.T) {
	c := newTestCamera()

	wx, wy := c.WindowToWorld(480, 270)
	if wx != 480 || wy != 270 {
		t.Errorf("WindowToWorld(480, 270) = (%v, %v), want (480, 270)", wx, wy)
	}

	if got := c.WindowToCanvas(480, 270); got != image.Pt(32, 32) {
		t.Errorf("WindowToCanvas(480, 270) = %v, want (32,32)", got)
	}
}

func TestWorldToCanvas(t *testing.T) {
	tests := []struct {
		name   string
		wx, wy float64
		want   image.Point
	}{
		{"canvas origin", 448, 238, image.Pt(0, 0)},
		{"inside first cell", 448.99, 238.5, image.Pt(0, 0)},
		{"last cell", 511.5, 301.5, image.Pt(63, 63)},
		{"left of canvas", 447.5, 238, image.Pt(-1, 0)},
		{"above canvas", 480, 302, image.Pt(32, 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WorldToCanvas(tt.wx, tt.wy, 64, 64, 960, 540)
			if got != tt.want {
				t.Errorf("WorldToCanvas(%v, %v) = %v, want %v", tt.wx, tt.wy, got, tt.want)
			}
		})
	}
}

func TestWorldToWindow_InvertsWindowToWorld(t *testing.T) {
	c := newTestCamera()
	c.Zoom(300, 200, ScrollIn)
	c.Resize(1280, 720)

	for _, p := range [][2]float64{{0, 0}, {640, 360}, {1279, 20}, {17.5, 700.25}} {
		wx, wy := c.WindowToWorld(p[0], p[1])
		x, y := c.WorldToWindow(wx, wy)
		if !near(x, p[0]) || !near(y, p[1]) {
			t.Errorf("round trip of %v = (%v, %v)", p, x, y)
		}
	}
}

func TestGeometry(t *testing.T) {
	g := NewGeometry(64, 64, 960, 540)

	if x, y := g.Origin(); x != 448 || y != 238 {
		t.Errorf("Origin() = (%v, %v), want (448, 238)", x, y)
	}
	if x, y := g.Center(); x != 480 || y != 270 {
		t.Errorf("Center() = (%v, %v), want (480, 270)", x, y)
	}
	if x, y := g.CellToWorld(image.Pt(3, 5)); x != 451 || y != 243 {
		t.Errorf("CellToWorld(3,5) = (%v, %v), want (451, 243)", x, y)
	}

	tests := []struct {
		wx, wy float64
		want   bool
	}{
		{480, 270, true},
		{448.5, 238.5, true},
		{448, 270, false}, // edges are outside
		{512, 270, false},
		{480, 302, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := g.Contains(tt.wx, tt.wy); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.wx, tt.wy, got, tt.want)
		}
	}
}

func TestDirectionOf(t *testing.T) {
	if DirectionOf(1) != ScrollIn || DirectionOf(-3) != ScrollOut || DirectionOf(0) != ScrollNone {
		t.Error("DirectionOf mapping is wrong")
	}
	if ScrollIn.String() != "in" || ScrollOut.String() != "out" || ScrollNone.String() != "none" {
		t.Error("Direction.String mapping is wrong")
	}
}

func TestZoom_AtCursorKeepsPivot(t *testing.T) {
	c := newTestCamera()

	// (470, 260) is over the canvas.
	before := c.View()
	wx, wy := c.WindowToWorld(470, 260)
	if !c.Zoom(470, 260, ScrollIn) {
		t.Fatal("Zoom() = false, want true")
	}
	after := c.View()

	if after.ZoomLevel != 0.5 {
		t.Errorf("ZoomLevel = %v, want 0.5", after.ZoomLevel)
	}
	if after.ZoomedWidth != before.ZoomedWidth/2 || after.ZoomedHeight != before.ZoomedHeight/2 {
		t.Errorf("zoomed size = %vx%v", after.ZoomedWidth, after.ZoomedHeight)
	}
	gx, gy := c.WindowToWorld(470, 260)
	if !near(gx, wx) || !near(gy, wy) {
		t.Errorf("pivot moved: (%v, %v) -> (%v, %v)", wx, wy, gx, gy)
	}
	checkInvariants(t, c)
}

func TestZoom_OutsideCanvasPivotsOnCenter(t *testing.T) {
	for _, dir := range []Direction{ScrollIn, ScrollOut} {
		t.Run(dir.String(), func(t *testing.T) {
			c := newTestCamera()
			cx, cy := c.Geometry().Center()

			// Window (100, 100) maps to world (100, 100), far from the canvas.
			sx, sy := c.WorldToWindow(cx, cy)
			if !c.Zoom(100, 100, dir) {
				t.Fatal("Zoom() = false, want true")
			}

			// The canvas center stays where it was on screen.
			gx, gy := c.WorldToWindow(cx, cy)
			if !near(gx, sx) || !near(gy, sy) {
				t.Errorf("canvas center moved on screen: (%v, %v) -> (%v, %v)", sx, sy, gx, gy)
			}
			checkInvariants(t, c)
		})
	}
}

func TestZoom_Rejected(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		dir  Direction
		opts []Option
	}{
		{"no direction", 270, ScrollNone, nil},
		{"top toolbar", 539, ScrollIn, nil},
		{"bottom toolbar", 10, ScrollIn, nil},
		{"above max", 270, ScrollOut, []Option{WithZoomLimits(0.5, 1)}},
		{"below min", 270, ScrollIn, []Option{WithZoomLimits(1, 2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCamera(tt.opts...)
			before := c.View()
			if c.Zoom(480, tt.y, tt.dir) {
				t.Error("Zoom() = true, want false")
			}
			if c.View() != before {
				t.Errorf("view changed on rejected zoom: %+v", c.View())
			}
		})
	}
}

func TestZoom_ToolbarBandsOption(t *testing.T) {
	c := newTestCamera(WithToolbarBands(0, 0))
	if !c.Zoom(480, 10, ScrollIn) {
		t.Error("Zoom() in bottom row should succeed without toolbar bands")
	}
}

func TestZoom_RoundTripIsExact(t *testing.T) {
	c := newTestCamera()
	start := c.View()

	if !c.Zoom(480, 270, ScrollIn) {
		t.Fatal("zoom in rejected")
	}
	if !c.Zoom(480, 270, ScrollOut) {
		t.Fatal("zoom out rejected")
	}

	if got := c.View(); got != start {
		t.Errorf("view after in+out = %+v, want %+v", got, start)
	}
}

func TestZoom_LimitsHoldUnderRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	c := newTestCamera()

	for i := range 2000 {
		x := rng.Float64() * 960
		y := rng.Float64() * 540
		dir := Direction(rng.IntN(3))
		c.Zoom(x, y, dir)
		if i%100 == 0 {
			c.Resize(400+rng.IntN(1200), 300+rng.IntN(700))
		}

		z := c.ZoomLevel()
		if z < DefaultZoomMin || z > DefaultZoomMax {
			t.Fatalf("step %d: ZoomLevel = %v out of range", i, z)
		}
		checkInvariants(t, c)
	}
}

func TestZoom_ReachesLimits(t *testing.T) {
	c := newTestCamera()
	for range 20 {
		c.Zoom(480, 270, ScrollIn)
	}
	if got := c.ZoomLevel(); got != DefaultZoomMin {
		t.Errorf("ZoomLevel after many zoom-ins = %v, want %v", got, DefaultZoomMin)
	}
	if got := c.ZoomPercent(); got != 3200 {
		t.Errorf("ZoomPercent() = %d, want 3200", got)
	}

	for range 20 {
		c.Zoom(480, 270, ScrollOut)
	}
	if got := c.ZoomLevel(); got != DefaultZoomMax {
		t.Errorf("ZoomLevel after many zoom-outs = %v, want %v", got, DefaultZoomMax)
	}
}

func TestResize(t *testing.T) {
	c := newTestCamera()
	if !c.Resize(1920, 1080) {
		t.Fatal("Resize() = false")
	}

	want := View{
		Left: -480, Right: 1440, Bottom: -270, Top: 810,
		ZoomLevel:   1,
		ZoomedWidth: 1920, ZoomedHeight: 1080,
		WindowWidth: 1920, WindowHeight: 1080,
	}
	if got := c.View(); got != want {
		t.Errorf("View() = %+v, want %+v", got, want)
	}

	// The canvas stays under the same cell at the new window center.
	if got := c.WindowToCanvas(960, 540); got != image.Pt(32, 32) {
		t.Errorf("WindowToCanvas(center) = %v, want (32,32)", got)
	}
}

func TestResize_AfterZoomKeepsLevel(t *testing.T) {
	c := newTestCamera()
	c.Zoom(480, 270, ScrollIn)
	c.Resize(480, 270)
	c.Resize(1000, 700)

	if got := c.ZoomLevel(); got != 0.5 {
		t.Errorf("ZoomLevel = %v, want 0.5", got)
	}
	checkInvariants(t, c)
}

func TestWithZoomLimits(t *testing.T) {
	tests := []struct {
		name     string
		lo, hi   float64
		min, max float64
	}{
		{"narrowed", 0.25, 1, 0.25, 1},
		{"above start", 1.5, 4, DefaultZoomMin, DefaultZoomMax},
		{"below start", 0.125, 0.5, DefaultZoomMin, DefaultZoomMax},
		{"non-positive", 0, 2, DefaultZoomMin, DefaultZoomMax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCamera(WithZoomLimits(tt.lo, tt.hi))
			if c.opts.zoomMin != tt.min || c.opts.zoomMax != tt.max {
				t.Errorf("limits = [%v, %v], want [%v, %v]", c.opts.zoomMin, c.opts.zoomMax, tt.min, tt.max)
			}
			checkInvariants(t, c)
		})
	}
}

func TestResize_IgnoresEmptyWindow(t *testing.T) {
	c := newTestCamera()
	before := c.View()
	if c.Resize(0, 540) || c.Resize(960, -1) {
		t.Error("Resize() with a non-positive size should be ignored")
	}
	if c.View() != before {
		t.Error("view changed on ignored resize")
	}
}

func checkInvariants(t *testing.T, c *Camera) {
	t.Helper()
	v := c.View()
	if !near(v.ZoomedWidth, v.WindowWidth*v.ZoomLevel) || !near(v.ZoomedHeight, v.WindowHeight*v.ZoomLevel) {
		t.Errorf("zoomed size %vx%v inconsistent with window %vx%v at level %v",
			v.ZoomedWidth, v.ZoomedHeight, v.WindowWidth, v.WindowHeight, v.ZoomLevel)
	}
	if !near(v.Right-v.Left, v.ZoomedWidth) || !near(v.Top-v.Bottom, v.ZoomedHeight) {
		t.Errorf("bounds %+v inconsistent with zoomed size", v)
	}
}

func near(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}
