package lattice

import "github.com/katalvlaran/roadnet/geom"

// None marks an absent Next/Prev link.
const None = -1

// Connectivity selects the neighbour offsets used by growth strategies.
type Connectivity int

const (
	// Conn4 uses the four axis-aligned offsets: +Y, -Y, -X, +X.
	Conn4 Connectivity = iota
	// Conn8 uses all eight offsets in the order produced by combining
	// {0, 1, -1} on both axes, skipping (0, 0).
	Conn8
)

var (
	offsets4 = [][2]int{{0, 1}, {0, -1}, {-1, 0}, {1, 0}}
	offsets8 = [][2]int{{0, 1}, {0, -1}, {1, 0}, {1, 1}, {1, -1}, {-1, 0}, {-1, 1}, {-1, -1}}
)

// Offsets returns the neighbour offsets for conn. The slice is shared; do not modify it.
func Offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return offsets8
	}
	return offsets4
}

// Connection is a lattice node: its grid index, world position and the
// arena indices of its successor and predecessor.
type Connection struct {
	X, Y     int       // grid index
	Position geom.Vec3 // world position on the ground plane (Y = 0)
	Active   bool      // false for the trimmed far border
	Next     int       // successor index or None
	Prev     int       // predecessor index or None
}

// HasNext reports whether c has a successor.
func (c Connection) HasNext() bool { return c.Next != None }

// HasPrev reports whether c has a predecessor.
func (c Connection) HasPrev() bool { return c.Prev != None }

// Lattice is the arena of Connections derived from terrain extents.
// Geometry is fixed at construction; only links change afterwards, and
// only through Link, which keeps the links a forest of simple paths.
type Lattice struct {
	Cols, Rows             int     // index space
	ActiveCols, ActiveRows int     // active sub-grid anchored at (0, 0)
	CellLength             float64 // spacing between neighbouring nodes
	Width, Depth           float64 // terrain extents the lattice was built from

	nodes []Connection
	links int
}
