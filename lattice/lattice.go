// SPDX-License-Identifier: MIT
// Package: roadnet/lattice

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadnet/geom"
)

// MaxNodes caps Cols×Rows so a tiny cell length cannot exhaust memory.
const MaxNodes = 1 << 22

// New derives a lattice from terrain extents and a cell length.
//
// The index space is floor((extent-cellLength)/cellLength) on each axis and
// node (x, y) sits at ((x+1)*cellLength, 0, (y+1)*cellLength), leaving a one
// cell margin. A node is active only while its coordinate stays strictly
// below extent-cellLength, so the far row and column of the index space are
// trimmed: extents 100x100 with cell 10 give a 9x9 index space of which 8x8
// is active.
//
// Returns ErrInvalidCellLength, ErrExtentsTooSmall or ErrLatticeTooLarge
// (wrapped) on bad input.
// Complexity: O(Cols×Rows) time and memory.
func New(width, depth, cellLength float64) (*Lattice, error) {
	if !(cellLength > 0) || math.IsInf(cellLength, 0) {
		return nil, fmt.Errorf("New(%g, %g, %g): %w", width, depth, cellLength, ErrInvalidCellLength)
	}
	if !(width >= 2*cellLength) || !(depth >= 2*cellLength) || math.IsInf(width, 0) || math.IsInf(depth, 0) {
		return nil, fmt.Errorf("New(%g, %g, %g): %w", width, depth, cellLength, ErrExtentsTooSmall)
	}

	cols := math.Floor((width - cellLength) / cellLength)
	rows := math.Floor((depth - cellLength) / cellLength)
	if cols*rows > MaxNodes {
		return nil, fmt.Errorf("New(%g, %g, %g): %gx%g nodes: %w", width, depth, cellLength, cols, rows, ErrLatticeTooLarge)
	}

	l := &Lattice{
		Cols:       int(cols),
		Rows:       int(rows),
		CellLength: cellLength,
		Width:      width,
		Depth:      depth,
	}
	l.ActiveCols = activeSpan(l.Cols, width, cellLength)
	l.ActiveRows = activeSpan(l.Rows, depth, cellLength)

	l.nodes = make([]Connection, l.Cols*l.Rows)
	for y := 0; y < l.Rows; y++ {
		for x := 0; x < l.Cols; x++ {
			l.nodes[l.Index(x, y)] = Connection{
				X:        x,
				Y:        y,
				Position: geom.V(float64(x+1)*cellLength, 0, float64(y+1)*cellLength),
				Active:   x < l.ActiveCols && y < l.ActiveRows,
				Next:     None,
				Prev:     None,
			}
		}
	}

	return l, nil
}

// activeSpan counts leading indices whose coordinate is below extent-cellLength.
func activeSpan(n int, extent, cellLength float64) int {
	limit := extent - cellLength
	k := 0
	for k < n && float64(k+1)*cellLength < limit {
		k++
	}
	return k
}

// Len returns the number of nodes in the arena (active or not).
func (l *Lattice) Len() int { return len(l.nodes) }

// LinkCount returns the number of successor links created so far.
func (l *Lattice) LinkCount() int { return l.links }

// InBounds reports whether (x, y) lies inside the index space.
// Complexity: O(1).
func (l *Lattice) InBounds(x, y int) bool {
	return x >= 0 && x < l.Cols && y >= 0 && y < l.Rows
}

// Index maps (x, y) to a row-major arena index. The caller checks InBounds.
func (l *Lattice) Index(x, y int) int { return y*l.Cols + x }

// Coordinate converts an arena index back to (x, y).
func (l *Lattice) Coordinate(i int) (x, y int) { return i % l.Cols, i / l.Cols }

// Node returns a copy of the node at arena index i.
// It panics if i is out of range, like a slice access.
func (l *Lattice) Node(i int) Connection { return l.nodes[i] }

// At returns the node at (x, y) and whether (x, y) is in bounds.
func (l *Lattice) At(x, y int) (Connection, bool) {
	if !l.InBounds(x, y) {
		return Connection{}, false
	}
	return l.nodes[l.Index(x, y)], true
}

// IsActive reports whether i is a valid index of an active node.
func (l *Lattice) IsActive(i int) bool {
	return i >= 0 && i < len(l.nodes) && l.nodes[i].Active
}

// Neighbor returns the index of the node offset by (dx, dy) from i.
// ok is false when the target falls outside the index space.
func (l *Lattice) Neighbor(i, dx, dy int) (j int, ok bool) {
	x, y := l.Coordinate(i)
	nx, ny := x+dx, y+dy
	if !l.InBounds(nx, ny) {
		return None, false
	}
	return l.Index(nx, ny), true
}

// ActiveIndices lists the active nodes in arena order.
func (l *Lattice) ActiveIndices() []int {
	out := make([]int, 0, l.ActiveCols*l.ActiveRows)
	for i := range l.nodes {
		if l.nodes[i].Active {
			out = append(out, i)
		}
	}
	return out
}

// Root returns the head of the chain containing i, following Prev links.
// Complexity: O(chain length).
func (l *Lattice) Root(i int) int {
	for steps := 0; l.nodes[i].Prev != None && steps < len(l.nodes); steps++ {
		i = l.nodes[i].Prev
	}
	return i
}

// CanLink reports whether the link a -> b keeps every node at one successor
// and one predecessor with no cycles: both nodes active, a != b, a has no
// successor, b has no predecessor, and b is not the head of a's own chain.
// Complexity: O(chain length of a).
func (l *Lattice) CanLink(a, b int) bool {
	if a == b || !l.IsActive(a) || !l.IsActive(b) {
		return false
	}
	if l.nodes[a].Next != None || l.nodes[b].Prev != None {
		return false
	}
	return l.Root(a) != b
}

// Link records a -> b. It returns ErrLinkRejected (wrapped) when CanLink is false.
func (l *Lattice) Link(a, b int) error {
	if !l.CanLink(a, b) {
		return fmt.Errorf("Link(%d -> %d): %w", a, b, ErrLinkRejected)
	}
	l.nodes[a].Next = b
	l.nodes[b].Prev = a
	l.links++
	return nil
}
