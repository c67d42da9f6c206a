// SPDX-License-Identifier: MIT
// Package: roadnet/splatmap

package splatmap

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/roadnet/geom"
	"github.com/katalvlaran/roadnet/roads"
)

var (
	// ErrBadExtents indicates terrain extents that are not positive and finite.
	ErrBadExtents = errors.New("splatmap: terrain extents must be positive and finite")
	// ErrBadResolution indicates an alpha map smaller than 1×1.
	ErrBadResolution = errors.New("splatmap: resolution must be positive")
)

// Layer indexes the two texture layers.
type Layer int

const (
	// LayerGround is the base terrain texture.
	LayerGround Layer = iota
	// LayerRoad is the road texture.
	LayerRoad
)

// Brush is the road footprint used when painting, in world units.
type Brush struct {
	Width  float64
	Length float64
}

// Map is a two-layer alpha map over a terrain anchored at the origin.
// Texel (x, z) covers world X in [x, x+1)·width/W and Z likewise.
type Map struct {
	width, depth float64
	w, h         int
	brush        Brush
	alpha        [2][]float64
}

// New returns a map of w×h texels for a terrain of the given extents, fully
// painted with the ground layer.
func New(width, depth float64, w, h int, brush Brush) (*Map, error) {
	if !(width > 0) || !(depth > 0) || math.IsInf(width, 0) || math.IsInf(depth, 0) {
		return nil, fmt.Errorf("New(%g, %g): %w", width, depth, ErrBadExtents)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("New: %dx%d: %w", w, h, ErrBadResolution)
	}
	m := &Map{
		width: width,
		depth: depth,
		w:     w,
		h:     h,
		brush: brush,
		alpha: [2][]float64{make([]float64, w*h), make([]float64, w*h)},
	}
	m.Reset()
	return m, nil
}

// Size returns the texel resolution.
func (m *Map) Size() (w, h int) { return m.w, m.h }

// Reset restores the whole map to the ground layer.
func (m *Map) Reset() {
	for i := range m.alpha[LayerGround] {
		m.alpha[LayerGround][i] = 1
		m.alpha[LayerRoad][i] = 0
	}
}

// Alpha returns the weight of layer at texel (x, z), or 0 outside the map.
func (m *Map) Alpha(layer Layer, x, z int) float64 {
	if x < 0 || x >= m.w || z < 0 || z >= m.h || layer < LayerGround || layer > LayerRoad {
		return 0
	}
	return m.alpha[layer][z*m.w+x]
}

// Paint stamps the road brush at pos, oriented by dir, and reports whether
// anything was painted. reset paints ground instead of road.
//
// The stamp starts at the texel under pos and spans
// int(W·|dir.z|)·2 + int(L·|dir.x|) + int(|dir.x|) texels along X and
// int(W·|dir.x|)·2 + int(L·|dir.z|) + int(|dir.z|) along Z, where W and L
// are the brush width and length truncated to integers. Positions on the
// first texel row or column, or off the map, paint nothing; stamps running
// past the far edges are clipped.
func (m *Map) Paint(pos, dir geom.Vec3, reset bool) bool {
	dir = dir.Abs()
	posX := int(pos.X * float64(m.w) / m.width)
	posZ := int(pos.Z * float64(m.h) / m.depth)
	if !(posX > 0 && posX < m.w && posZ > 0 && posZ < m.h) {
		return false
	}

	c := float64(int(m.brush.Width))
	b := float64(int(m.brush.Length))
	xMax := int(c*dir.Z)*2 + int(b*dir.X) + int(dir.X)
	zMax := int(c*dir.X)*2 + int(b*dir.Z) + int(dir.Z)

	ground, road := 0.0, 1.0
	if reset {
		ground, road = 1, 0
	}
	for z := posZ; z < posZ+zMax && z < m.h; z++ {
		for x := posX; x < posX+xMax && x < m.w; x++ {
			i := z*m.w + x
			m.alpha[LayerGround][i] = ground
			m.alpha[LayerRoad][i] = road
		}
	}
	return xMax > 0 && zMax > 0
}

// PaintNetwork paints every road of n in generation order at its anchor
// corner, or unpaints them when reset is set. It returns the number of
// stamps that painted something.
func (m *Map) PaintNetwork(n *roads.Network, reset bool) int {
	if n == nil {
		return 0
	}
	painted := 0
	n.Walk(func(r *roads.Road) bool {
		if m.Paint(r.Anchor, r.Direction, reset) {
			painted++
		}
		return true
	})
	return painted
}

// RoadFraction returns the share of texels whose road weight is above one half.
func (m *Map) RoadFraction() float64 {
	n := 0
	for _, v := range m.alpha[LayerRoad] {
		if v > 0.5 {
			n++
		}
	}
	return float64(n) / float64(len(m.alpha[LayerRoad]))
}
