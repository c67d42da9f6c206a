package roads

import (
	"github.com/katalvlaran/roadnet/geom"
)

// None marks an absent Prev/Next road link.
const None = -1

// BoundsFunc reports whether every point lies within the terrain.
type BoundsFunc func(points []geom.Vec3) bool

// Geometry is the width-extruded outline of a segment A -> B.
type Geometry struct {
	Direction geom.Vec3    // normalize(B - A)
	Offset    geom.Vec3    // perpendicular(Direction) * width / 2
	Left      geom.Vec3    // A - Offset
	Right     geom.Vec3    // A + Offset
	Corners   [4]geom.Vec3 // A-Offset, A+Offset, B-Offset, B+Offset
	Anchor    geom.Vec3    // canonical corner, see Boundary
}

// Road is one accepted segment of the network.
//
// Width and Direction are fixed at creation. Prev and Next link roads in
// generation order and are arena indices into Network.Roads.
type Road struct {
	ID       int
	From, To int // lattice indices of the endpoints, lattice.None for free segments
	A, B     geom.Vec3
	Width    float64
	Length   float64
	Geometry
	Buildings []BuildingRef // owned by this road
	Prev      int
	Next      int
}

// Network is the arena of accepted roads plus assembly counters.
type Network struct {
	Roads    []Road
	First    int     // first road in generation order, None when empty
	Last     int     // last road in generation order, None when empty
	Rejected int     // candidate segments dropped by the bounds check or as degenerate
	Width    float64 // road width used for every segment
}

// Side selects one side of a road.
type Side int

const (
	// SideLeft is the A-Offset side.
	SideLeft Side = iota
	// SideRight is the A+Offset side.
	SideRight
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// BuildingSlot is a planned building position beside a road.
type BuildingSlot struct {
	RoadID   int
	Side     Side
	Position geom.Vec3
	Facing   geom.Vec3 // unit vector pointing away from the road
	Theme    string    // set by callers that group buildings by theme
}

// BuildingRef is what a BuildingPlacer returns for a placed building.
type BuildingRef struct {
	ID   string
	Slot BuildingSlot
}

// BuildingPlacer places buildings for slots. ok is false when it declines.
type BuildingPlacer interface {
	PlaceBuilding(slot BuildingSlot) (ref BuildingRef, ok bool)
}

// Rand is the randomness PlanBuildings consumes. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}
