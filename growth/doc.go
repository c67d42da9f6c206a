// Package growth grows road networks on a lattice.
//
// Two strategies are provided:
//
//   - WeightedWalk: a random walk from lattice origin (0, 0) over the eight
//     neighbours, biased towards an attractor point through
//     weighting.EdgeWeight; dead ends restart at a random active cell.
//   - MazeWalk: a four-direction walk that keeps two cells clear of the
//     index-space edges, follows existing links when it lands on them and
//     decorates chain ends with tree markers.
//
// Both go through Grow, which resolves functional options (WithSeed,
// WithRand, WithAttractor, WithBias, WithMaxIterations, WithMazeReserve,
// WithPlacer, WithLogger) into a Config. Links are created only through
// lattice.Link, so the result is always a forest of simple paths.
//
// Errors:
//
//   - ErrNilLattice, ErrNilStrategy from Grow.
//   - ErrUnknownStrategy from ByName.
//
// Running out of candidates is never an error; Stats reports what happened.
//
// Determinism: with WithSeed (or a WithRand source in a known state) a pass
// is reproducible; compare lattice.Fingerprint values.
package growth
