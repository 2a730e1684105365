// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/camera"
)

// recordingBatch records quad notifications and enforces the one quad
// per key contract.
type recordingBatch struct {
	t     *testing.T
	quads map[QuadKey]pixed.Color
	ops   []string
}

func newRecordingBatch(t *testing.T) *recordingBatch {
	return &recordingBatch{t: t, quads: make(map[QuadKey]pixed.Color)}
}

func (b *recordingBatch) AddQuad(key QuadKey, wx, wy float64, c pixed.Color) {
	if _, ok := b.quads[key]; ok {
		b.t.Errorf("AddQuad(%v) on a key that already has a quad", key)
	}
	b.quads[key] = c
	b.ops = append(b.ops, fmt.Sprintf("add %v %d,%d @%v,%v", key.Layer, key.X, key.Y, wx, wy))
}

func (b *recordingBatch) RemoveQuad(key QuadKey) {
	if _, ok := b.quads[key]; !ok {
		b.t.Errorf("RemoveQuad(%v) on a key without a quad", key)
	}
	delete(b.quads, key)
	b.ops = append(b.ops, fmt.Sprintf("remove %v %d,%d", key.Layer, key.X, key.Y))
}

func newTestCanvas(t *testing.T) (*Canvas, *recordingBatch) {
	b := newRecordingBatch(t)
	return New(camera.NewGeometry(64, 64, 960, 540), WithBatch(b)), b
}

func TestCanvas_Set(t *testing.T) {
	c, b := newTestCanvas(t)

	if !c.Set(image.Pt(3, 5), pixed.Red, Committed) {
		t.Fatal("Set() = false")
	}
	if got := c.At(image.Pt(3, 5), Committed); got != pixed.Filled(pixed.Red) {
		t.Errorf("At() = %v, want red", got)
	}
	if got := c.At(image.Pt(3, 5), Preview); got != pixed.Empty {
		t.Errorf("preview At() = %v, want empty", got)
	}

	// Overwrite: remove then add.
	c.Set(image.Pt(3, 5), pixed.Blue, Committed)

	want := []string{
		"add committed 3,5 @451,243",
		"remove committed 3,5",
		"add committed 3,5 @451,243",
	}
	if fmt.Sprint(b.ops) != fmt.Sprint(want) {
		t.Errorf("ops = %v, want %v", b.ops, want)
	}
	if b.quads[QuadKey{Committed, 3, 5}] != pixed.Blue {
		t.Error("quad color not updated")
	}
}

func TestCanvas_SetOutOfBounds(t *testing.T) {
	c, b := newTestCanvas(t)
	for _, p := range []image.Point{{-1, 0}, {64, 0}, {0, 64}, {0, -1}} {
		if c.Set(p, pixed.Black, Preview) {
			t.Errorf("Set(%v) = true, want false", p)
		}
	}
	if len(b.ops) != 0 {
		t.Errorf("out-of-bounds writes notified the batch: %v", b.ops)
	}
}

func TestCanvas_Clear(t *testing.T) {
	c, b := newTestCanvas(t)
	c.Set(image.Pt(0, 0), pixed.Black, Committed)

	if !c.Clear(image.Pt(0, 0), Committed) {
		t.Error("Clear() of a filled cell = false")
	}
	if c.Clear(image.Pt(0, 0), Committed) {
		t.Error("Clear() of an empty cell = true")
	}
	if c.Clear(image.Pt(-5, 0), Committed) {
		t.Error("Clear() out of bounds = true")
	}
	if len(b.quads) != 0 {
		t.Errorf("quads left after clear: %v", b.quads)
	}
	if c.At(image.Pt(0, 0), Committed) != pixed.Empty {
		t.Error("cell not empty after Clear")
	}
}

func TestCanvas_Commit(t *testing.T) {
	c, b := newTestCanvas(t)

	// A committed cell that the preview overwrites, and one it leaves alone.
	c.Set(image.Pt(1, 1), pixed.Green, Committed)
	c.Set(image.Pt(9, 9), pixed.Green, Committed)

	pending := map[image.Point]pixed.Color{
		{0, 0}:   pixed.Red,
		{1, 1}:   pixed.Blue,
		{63, 63}: pixed.Black,
		{10, 40}: {R: 1, G: 2, B: 3, A: 0},
	}
	for p, col := range pending {
		c.Set(p, col, Preview)
	}

	if n := c.Commit(); n != len(pending) {
		t.Errorf("Commit() = %d, want %d", n, len(pending))
	}

	if n := c.Layer(Preview).(*Grid).Count(); n != 0 {
		t.Errorf("%d preview cells left after commit", n)
	}
	for p, col := range pending {
		if got := c.At(p, Committed); got != pixed.Filled(col) {
			t.Errorf("committed %v = %v, want %v", p, got, col)
		}
		if _, ok := b.quads[QuadKey{Preview, p.X, p.Y}]; ok {
			t.Errorf("preview quad at %v survived commit", p)
		}
		if b.quads[QuadKey{Committed, p.X, p.Y}] != col {
			t.Errorf("committed quad at %v = %v, want %v", p, b.quads[QuadKey{Committed, p.X, p.Y}], col)
		}
	}
	if got := c.At(image.Pt(9, 9), Committed); got != pixed.Filled(pixed.Green) {
		t.Errorf("untouched committed cell = %v", got)
	}

	if n := c.Commit(); n != 0 {
		t.Errorf("second Commit() = %d, want 0", n)
	}
}

func TestCanvas_Discard(t *testing.T) {
	c, b := newTestCanvas(t)
	c.Set(image.Pt(2, 2), pixed.Red, Preview)
	c.Set(image.Pt(3, 2), pixed.Red, Preview)

	if n := c.Discard(); n != 2 {
		t.Errorf("Discard() = %d, want 2", n)
	}
	if len(b.quads) != 0 {
		t.Errorf("quads left after discard: %v", b.quads)
	}
	if c.At(image.Pt(2, 2), Committed) != pixed.Empty {
		t.Error("Discard wrote to the committed layer")
	}
}

func TestCanvas_HitTest(t *testing.T) {
	c, _ := newTestCanvas(t)
	tests := []struct {
		wx, wy float64
		want   bool
	}{
		{480, 270, true},
		{448.1, 238.1, true},
		{511.9, 301.9, true},
		{448, 270, false},
		{480, 302, false},
		{10, 10, false},
	}
	for _, tt := range tests {
		if got := c.HitTest(tt.wx, tt.wy); got != tt.want {
			t.Errorf("HitTest(%v, %v) = %v, want %v", tt.wx, tt.wy, got, tt.want)
		}
	}
}

func TestCanvas_Image(t *testing.T) {
	c := New(camera.NewGeometry(4, 3, 100, 100), WithBackground(pixed.White))
	c.Set(image.Pt(0, 0), pixed.Red, Committed)
	c.Set(image.Pt(3, 2), pixed.Blue, Committed)
	c.Set(image.Pt(3, 2), pixed.Green, Preview)
	c.Set(image.Pt(1, 1), pixed.Color{R: 0, G: 0, B: 0, A: 0}, Preview)

	img := c.Image()
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Fatalf("Bounds() = %v", img.Bounds())
	}

	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 2, color.NRGBA{255, 0, 0, 255}},     // canvas (0,0) is the bottom-left pixel
		{3, 0, color.NRGBA{0, 255, 0, 255}},     // preview over committed
		{1, 1, color.NRGBA{255, 255, 255, 255}}, // transparent preview shows background
		{2, 0, color.NRGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	if got := c.ColorAt(image.Pt(3, 2)); got != pixed.Green {
		t.Errorf("ColorAt(3,2) = %v, want green", got)
	}
	if got := c.ColorAt(image.Pt(2, 2)); got != pixed.White {
		t.Errorf("ColorAt(2,2) = %v, want background", got)
	}

	layer := c.LayerImage(Committed)
	if got := layer.NRGBAAt(1, 1); got.A != 0 {
		t.Errorf("empty committed cell alpha = %d, want 0", got.A)
	}
}

func TestCanvas_UnknownLayer(t *testing.T) {
	c, b := newTestCanvas(t)
	c.Set(image.Pt(3, 5), pixed.Blue, Committed)
	b.ops = nil

	bad := Layer(2)
	if c.Set(image.Pt(3, 5), pixed.Red, bad) {
		t.Error("Set() on an unknown layer = true")
	}
	if c.Clear(image.Pt(3, 5), bad) {
		t.Error("Clear() on an unknown layer = true")
	}
	if len(b.ops) != 0 {
		t.Errorf("unknown layer produced quad ops %v", b.ops)
	}
	if got := c.At(image.Pt(3, 5), Committed); got != pixed.Filled(pixed.Blue) {
		t.Errorf("committed cell = %v, want blue", got)
	}
	if got := c.At(image.Pt(3, 5), bad); got != pixed.Empty {
		t.Errorf("At() on an unknown layer = %v, want empty", got)
	}
	if c.Layer(bad) != nil || c.LayerImage(bad) != nil {
		t.Error("unknown layer readers should be nil")
	}
}

func TestLayer_String(t *testing.T) {
	if Committed.String() != "committed" || Preview.String() != "preview" || Layer(7).String() != "Layer(7)" {
		t.Error("Layer.String mapping is wrong")
	}
}
