package roads

import "errors"

var (
	// ErrInvalidWidth indicates a road width that is zero, negative or not finite.
	ErrInvalidWidth = errors.New("roads: width must be positive and finite")
	// ErrNilLattice indicates Assemble was called without a lattice.
	ErrNilLattice = errors.New("roads: lattice is nil")
	// ErrNilNetwork indicates Decorate was called without a network.
	ErrNilNetwork = errors.New("roads: network is nil")
)
