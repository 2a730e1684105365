// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"cmp"
	"slices"

	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/canvas"
)

// Quad is one live cell quad.
type Quad struct {
	Key canvas.QuadKey

	// World position of the bottom-left corner. Quads are one world
	// unit square.
	X, Y float64

	Color pixed.Color
}

// QuadSet stores the live quads reported by a canvas.
// It implements canvas.Batch.
//
// QuadSet is NOT safe for concurrent use.
type QuadSet struct {
	quads map[canvas.QuadKey]Quad

	// sorted caches the draw order; nil when stale.
	sorted []Quad
}

var _ canvas.Batch = (*QuadSet)(nil)

// NewQuadSet creates an empty quad store.
func NewQuadSet() *QuadSet {
	return &QuadSet{quads: make(map[canvas.QuadKey]Quad)}
}

// AddQuad implements canvas.Batch. A quad already stored at key is
// replaced.
func (s *QuadSet) AddQuad(key canvas.QuadKey, wx, wy float64, c pixed.Color) {
	s.quads[key] = Quad{Key: key, X: wx, Y: wy, Color: c}
	s.sorted = nil
}

// RemoveQuad implements canvas.Batch. Removing a missing key is a no-op.
func (s *QuadSet) RemoveQuad(key canvas.QuadKey) {
	if _, ok := s.quads[key]; !ok {
		return
	}
	delete(s.quads, key)
	s.sorted = nil
}

// Len returns the number of live quads.
func (s *QuadSet) Len() int {
	return len(s.quads)
}

// Quad returns the quad stored at key.
func (s *QuadSet) Quad(key canvas.QuadKey) (Quad, bool) {
	q, ok := s.quads[key]
	return q, ok
}

// Reset removes all quads.
func (s *QuadSet) Reset() {
	clear(s.quads)
	s.sorted = nil
}

// Quads returns the live quads in draw order: the committed layer
// before the preview layer, each bottom row first, left to right.
// The returned slice is shared; callers must not modify it.
func (s *QuadSet) Quads() []Quad {
	if s.sorted == nil {
		s.sorted = make([]Quad, 0, len(s.quads))
		for _, q := range s.quads {
			s.sorted = append(s.sorted, q)
		}
		slices.SortFunc(s.sorted, compareQuads)
	}
	return s.sorted
}

// Each calls fn for every live quad in draw order.
func (s *QuadSet) Each(fn func(Quad)) {
	for _, q := range s.Quads() {
		fn(q)
	}
}

func compareQuads(a, b Quad) int {
	return cmp.Or(
		cmp.Compare(a.Key.Layer, b.Key.Layer),
		cmp.Compare(a.Key.Y, b.Key.Y),
		cmp.Compare(a.Key.X, b.Key.X),
	)
}
