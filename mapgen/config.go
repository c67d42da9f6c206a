package mapgen

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/roadnet/geom"
	"github.com/katalvlaran/roadnet/growth"
)

// ErrInvalidConfig indicates a MapConfig field outside its valid range.
var ErrInvalidConfig = errors.New("mapgen: invalid map config")

// MapConfig holds the parameters of one generation pass. It is a value
// type; generators never modify it.
type MapConfig struct {
	CellLength    float64   // lattice spacing
	CellWidth     float64   // road width
	Theme         string    // building catalog key
	Density       float64   // building density in [0, 1]
	Uniformity    float64   // building regularity in [0, 1]
	GravityWeight float64   // sigmoid bias of the distance-to-attractor term
	AngleWeight   float64   // sigmoid bias of the heading term
	SeedPoint     geom.Vec3 // attractor for the weighted walk
	Strategy      string    // "weighted" or "maze"
	Seed          int64     // RNG seed, 0 picks one from the clock
	MaxIterations int       // weighted walk step cap
}

// DefaultMapConfig returns the stock configuration: 10-unit cells and
// roads, theme "default", density 0.3, uniformity 1, gravity weight 3,
// angle weight 5, attractor (500, 0, 500), weighted walk, 1000 steps.
func DefaultMapConfig() MapConfig {
	return MapConfig{
		CellLength:    10,
		CellWidth:     10,
		Theme:         "default",
		Density:       0.3,
		Uniformity:    1,
		GravityWeight: growth.DefaultGravityBias,
		AngleWeight:   growth.DefaultAngleBias,
		SeedPoint:     growth.DefaultAttractor,
		Strategy:      growth.NameWeighted,
		MaxIterations: growth.DefaultMaxIterations,
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c MapConfig) Validate() error {
	switch {
	case !(c.CellLength > 0) || math.IsInf(c.CellLength, 0):
		return fmt.Errorf("%w: cell length %g", ErrInvalidConfig, c.CellLength)
	case !(c.CellWidth > 0) || math.IsInf(c.CellWidth, 0):
		return fmt.Errorf("%w: road width %g", ErrInvalidConfig, c.CellWidth)
	case !(c.Density >= 0 && c.Density <= 1):
		return fmt.Errorf("%w: density %g not in [0, 1]", ErrInvalidConfig, c.Density)
	case !(c.Uniformity >= 0 && c.Uniformity <= 1):
		return fmt.Errorf("%w: uniformity %g not in [0, 1]", ErrInvalidConfig, c.Uniformity)
	case math.IsNaN(c.GravityWeight) || math.IsNaN(c.AngleWeight):
		return fmt.Errorf("%w: NaN weight", ErrInvalidConfig)
	case !c.SeedPoint.IsFinite():
		return fmt.Errorf("%w: seed point %v", ErrInvalidConfig, c.SeedPoint)
	case c.MaxIterations <= 0:
		return fmt.Errorf("%w: max iterations %d", ErrInvalidConfig, c.MaxIterations)
	}
	if _, err := growth.ByName(c.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
