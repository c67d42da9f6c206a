package growth

import (
	"log/slog"

	"github.com/katalvlaran/roadnet/geom"
	"github.com/katalvlaran/roadnet/lattice"
)

// Rand is the randomness a strategy consumes. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// RandRange returns a uniform float in [min, max).
func RandRange(r Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// MarkerKind classifies decorative markers.
type MarkerKind int

const (
	// MarkerTree is the decoration placed at chain ends by MazeWalk.
	MarkerTree MarkerKind = iota
)

// String returns the lower-case kind name.
func (k MarkerKind) String() string {
	switch k {
	case MarkerTree:
		return "tree"
	default:
		return "unknown"
	}
}

// Marker is a decoration request handed to a Placer.
type Marker struct {
	Kind     MarkerKind
	Index    int       // lattice arena index
	Position geom.Vec3 // node position
	Scale    float64   // uniform in [0.5, 2.5)
}

// Placer receives markers. Placement is fire-and-forget.
type Placer interface {
	PlaceMarker(m Marker)
}

// PlacerFunc adapts a function to Placer.
type PlacerFunc func(m Marker)

// PlaceMarker calls f(m).
func (f PlacerFunc) PlaceMarker(m Marker) { f(m) }

// Config is the resolved, read-only configuration a Strategy runs with.
type Config struct {
	Rand          Rand         // never nil once resolved
	Attractor     geom.Vec3    // global attractor for weighting
	GravityBias   float64      // sigmoid bias of the distance term
	AngleBias     float64      // sigmoid bias of the heading term
	MaxIterations int          // WeightedWalk step cap
	MazeReserve   int          // MazeWalk stops once its space budget falls to this value
	Placer        Placer       // optional marker sink
	Logger        *slog.Logger // never nil once resolved
}

// Stats summarises a growth pass.
type Stats struct {
	Strategy   string // strategy name
	Iterations int    // steps taken
	Links      int    // links created
	Jumps      int    // weighted walk: random restarts after a dead end
	Abandoned  int    // maze walk: start points given up for lack of options
	Followed   int    // maze walk: steps along links that already existed
	Markers    int    // markers handed to the Placer
	Exhausted  bool   // maze walk: ran out of free start cells
}

// Strategy grows links on l. Strategies never fail: a short or empty
// network is a valid outcome.
type Strategy func(l *lattice.Lattice, cfg *Config) Stats
