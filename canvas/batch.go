// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"

	"github.com/gogpu/pixed"
)

// Layer selects one of the two grids of a Canvas.
type Layer uint8

const (
	// Committed is the image layer.
	Committed Layer = iota

	// Preview holds the output of the gesture in progress.
	Preview
)

// String implements fmt.Stringer.
func (l Layer) String() string {
	switch l {
	case Committed:
		return "committed"
	case Preview:
		return "preview"
	default:
		return fmt.Sprintf("Layer(%d)", uint8(l))
	}
}

// QuadKey identifies the quad of one cell within one layer.
type QuadKey struct {
	Layer Layer
	X, Y  int
}

// Batch receives quad notifications from a Canvas.
//
// A cell holds at most one quad per layer. The canvas removes the old
// quad before adding a new one at the same key, so implementations may
// treat AddQuad on an existing key as a programming error.
type Batch interface {
	// AddQuad adds a one-unit square quad whose bottom-left corner is
	// at world position (wx, wy).
	AddQuad(key QuadKey, wx, wy float64, c pixed.Color)

	// RemoveQuad removes the quad at key.
	RemoveQuad(key QuadKey)
}

// nopBatch discards all notifications.
type nopBatch struct{}

func (nopBatch) AddQuad(QuadKey, float64, float64, pixed.Color) {}
func (nopBatch) RemoveQuad(QuadKey)                              {}
