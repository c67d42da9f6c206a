// Package lattice derives the regular grid of Connection nodes that road
// networks grow on, and owns the link rules that keep the network a forest
// of simple paths.
//
// Overview:
//
//   - New(width, depth, cellLength) builds a Cols×Rows arena. Node (x, y)
//     sits at ((x+1)*cellLength, 0, (y+1)*cellLength). The last row and
//     column are inactive (border trim).
//   - Links are arena indices (Next/Prev, None when absent). Link refuses
//     anything that would give a node a second successor or predecessor, or
//     close a cycle.
//   - Chains, Edges and Terminals traverse the result; Validate and
//     Fingerprint support tests and determinism checks.
//
// Complexity:
//
//   - New:      O(Cols×Rows) time and memory.
//   - CanLink:  O(chain length) (head lookup).
//   - Chains:   O(Cols×Rows).
//
// Errors:
//
//   - ErrInvalidCellLength, ErrExtentsTooSmall from New.
//   - ErrLinkRejected from Link.
//   - ErrAsymmetricLink, ErrCycle from Validate.
//
// Example:
//
//	l, err := lattice.New(100, 100, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = l.Link(l.Index(0, 0), l.Index(1, 0))
//	fmt.Println(l.Chains()) // [[0 1]]
package lattice
