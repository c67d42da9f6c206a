// SPDX-License-Identifier: MIT
// Package: roadnet/config

package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/roadnet/geom"
	"github.com/katalvlaran/roadnet/mapgen"
	"github.com/katalvlaran/roadnet/pathsearch"
	"github.com/katalvlaran/roadnet/splatmap"
	"github.com/katalvlaran/roadnet/terrain"
)

// Terrain kinds.
const (
	KindFlat  = "flat"
	KindNoise = "noise"
)

var (
	// ErrUnknownTerrain indicates a terrain kind other than "flat" or "noise".
	ErrUnknownTerrain = errors.New("config: unknown terrain kind")
	// ErrBadVector indicates a vector attribute without exactly three numbers.
	ErrBadVector = errors.New("config: vector must have three components")
)

// File is a fully resolved configuration: every value not set in the file
// keeps its default.
type File struct {
	Map     mapgen.MapConfig
	Terrain Terrain
	Search  Search
}

// Terrain describes the ground the map is generated on.
type Terrain struct {
	Width, Depth    float64
	Kind            string  // KindFlat or KindNoise
	Height          float64 // flat: ground height; noise: base offset
	Seed            int64   // noise seed
	Noise           terrain.NoiseOptions
	Obstacles       []terrain.Box
	SplatResolution int // alpha map texels per axis
}

// Search holds the path search limits.
type Search struct {
	Step          float64
	MaxDistanceUp float64
	GoalRadius    float64
	MaxIterations int
	MaxNodes      int
	GroundRay     float64
}

// Default returns the configuration used when no file is given: a flat
// 1000×1000 terrain, DefaultMapConfig and the stock search limits.
func Default() File {
	so := pathsearch.DefaultOptions()
	return File{
		Map: mapgen.DefaultMapConfig(),
		Terrain: Terrain{
			Width:           1000,
			Depth:           1000,
			Kind:            KindFlat,
			Noise:           terrain.DefaultNoiseOptions(),
			SplatResolution: 512,
		},
		Search: Search{
			Step:          so.Step,
			MaxDistanceUp: so.MaxDistanceUp,
			GoalRadius:    so.GoalRadius,
			MaxIterations: so.MaxIterations,
			MaxNodes:      so.MaxNodes,
			GroundRay:     so.GroundRay,
		},
	}
}

// Validate checks the map settings and the terrain extents and kind.
func (f File) Validate() error {
	if err := f.Map.Validate(); err != nil {
		return err
	}
	t := f.Terrain
	if !(t.Width > 0) || !(t.Depth > 0) || math.IsInf(t.Width, 0) || math.IsInf(t.Depth, 0) {
		return fmt.Errorf("config: terrain %g×%g: %w", t.Width, t.Depth, terrain.ErrBadExtents)
	}
	if t.Kind != KindFlat && t.Kind != KindNoise {
		return fmt.Errorf("%w: %q", ErrUnknownTerrain, t.Kind)
	}
	if t.SplatResolution < 1 {
		return fmt.Errorf("config: splat resolution %d: %w", t.SplatResolution, splatmap.ErrBadResolution)
	}
	return nil
}

// Ground builds the heightfield described by t.
func (t Terrain) Ground() (*terrain.Heightfield, error) {
	switch t.Kind {
	case KindFlat:
		if !(t.Width > 0) || !(t.Depth > 0) || math.IsInf(t.Width, 0) || math.IsInf(t.Depth, 0) {
			return nil, fmt.Errorf("config: terrain %g×%g: %w", t.Width, t.Depth, terrain.ErrBadExtents)
		}
		return terrain.NewFlat(t.Width, t.Depth, t.Height), nil
	case KindNoise:
		hf, err := terrain.NewNoise(t.Width, t.Depth, t.Seed, t.Noise)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if t.Height == 0 {
			return hf, nil
		}
		return shifted(hf, t.Height)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTerrain, t.Kind)
	}
}

// World builds the ground plus the configured obstacles.
func (t Terrain) World() (*terrain.World, error) {
	ground, err := t.Ground()
	if err != nil {
		return nil, err
	}
	return terrain.NewWorld(ground, t.Obstacles...), nil
}

// Splat returns an empty alpha map for the terrain, with a brush matching
// the map's road width and cell length.
func (f File) Splat() (*splatmap.Map, error) {
	res := f.Terrain.SplatResolution
	return splatmap.New(f.Terrain.Width, f.Terrain.Depth, res, res,
		splatmap.Brush{Width: f.Map.CellWidth, Length: f.Map.CellLength})
}

// Options converts s into pathsearch options.
func (s Search) Options() []pathsearch.Option {
	return []pathsearch.Option{
		pathsearch.WithStep(s.Step),
		pathsearch.WithMaxDistanceUp(s.MaxDistanceUp),
		pathsearch.WithGoalRadius(s.GoalRadius),
		pathsearch.WithMaxIterations(s.MaxIterations),
		pathsearch.WithMaxNodes(s.MaxNodes),
		pathsearch.WithGroundRay(s.GroundRay),
	}
}

// shifted raises every sample of hf by dy.
func shifted(hf *terrain.Heightfield, dy float64) (*terrain.Heightfield, error) {
	res := hf.Resolution()
	w, d := hf.Extents()
	heights := make([]float64, 0, res*res)
	for z := 0; z < res; z++ {
		for x := 0; x < res; x++ {
			p := geom.V(w*float64(x)/float64(res-1), 0, d*float64(z)/float64(res-1))
			heights = append(heights, hf.SampleGroundHeight(p)+dy)
		}
	}
	return terrain.NewHeightfield(w, d, res, heights)
}

func vec3(name string, v []float64) (geom.Vec3, error) {
	if len(v) != 3 {
		return geom.Vec3{}, fmt.Errorf("%w: %s has %d", ErrBadVector, name, len(v))
	}
	return geom.V(v[0], v[1], v[2]), nil
}
