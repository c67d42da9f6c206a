// SPDX-License-Identifier: MIT
// Package: roadnet/terrain

package terrain

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadnet/geom"
)

// Heightfield is a square grid of height samples spanning [0, width] × [0, depth]
// on the ground plane. It is immutable after construction.
type Heightfield struct {
	width, depth float64
	res          int       // samples per axis
	heights      []float64 // row-major: heights[z*res + x]
}

// NewFlat returns a heightfield with a constant height.
func NewFlat(width, depth, height float64) *Heightfield {
	return &Heightfield{
		width:   width,
		depth:   depth,
		res:     2,
		heights: []float64{height, height, height, height},
	}
}

// NewHeightfield wraps res×res samples (row-major, Z rows of X samples).
// The slice is copied.
func NewHeightfield(width, depth float64, res int, heights []float64) (*Heightfield, error) {
	if !(width > 0) || !(depth > 0) || math.IsInf(width, 0) || math.IsInf(depth, 0) {
		return nil, fmt.Errorf("NewHeightfield(%g, %g): %w", width, depth, ErrBadExtents)
	}
	if res < 2 {
		return nil, fmt.Errorf("NewHeightfield: res %d: %w", res, ErrBadResolution)
	}
	if len(heights) != res*res {
		return nil, fmt.Errorf("NewHeightfield: %d heights for res %d: %w", len(heights), res, ErrHeightCount)
	}
	h := &Heightfield{width: width, depth: depth, res: res, heights: make([]float64, len(heights))}
	copy(h.heights, heights)
	return h, nil
}

// Extents returns the terrain size on X and Z.
func (h *Heightfield) Extents() (width, depth float64) { return h.width, h.depth }

// Resolution returns the number of samples per axis.
func (h *Heightfield) Resolution() int { return h.res }

// Contains reports whether p lies within the terrain footprint, edges
// included. Height is ignored.
func (h *Heightfield) Contains(p geom.Vec3) bool {
	return p.X >= 0 && p.X <= h.width && p.Z >= 0 && p.Z <= h.depth
}

// InBounds reports whether every point lies within the footprint. It has
// the shape of roads.BoundsFunc.
func (h *Heightfield) InBounds(points []geom.Vec3) bool {
	for _, p := range points {
		if !h.Contains(p) {
			return false
		}
	}
	return true
}

// SampleGroundHeight returns the bilinearly interpolated height under p.
// Points outside the footprint take the height of the nearest edge.
func (h *Heightfield) SampleGroundHeight(p geom.Vec3) float64 {
	fx := clamp(p.X/h.width, 0, 1) * float64(h.res-1)
	fz := clamp(p.Z/h.depth, 0, 1) * float64(h.res-1)
	x0, z0 := int(fx), int(fz)
	x1, z1 := min(x0+1, h.res-1), min(z0+1, h.res-1)
	tx, tz := fx-float64(x0), fz-float64(z0)

	a := h.at(x0, z0)*(1-tx) + h.at(x1, z0)*tx
	b := h.at(x0, z1)*(1-tx) + h.at(x1, z1)*tx
	return a*(1-tz) + b*tz
}

// MinMax returns the lowest and highest sample.
func (h *Heightfield) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range h.heights {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// cellSize is the smaller sample spacing of the two axes.
func (h *Heightfield) cellSize() float64 {
	return math.Min(h.width, h.depth) / float64(h.res-1)
}

func (h *Heightfield) at(x, z int) float64 { return h.heights[z*h.res+x] }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
