// Package roads assembles grown lattice links into road segments.
//
// Overview:
//
//   - Boundary derives the direction, the perpendicular offset
//     (width/2 on the ground plane), the four corners and the anchor corner
//     of a segment.
//   - Assembler.Assemble walks every chain from its head and appends one
//     Road per link. A segment is kept only if the bounds predicate accepts
//     both endpoints and all four corners; dropped segments are counted in
//     Network.Rejected.
//   - Accepted roads are linked Prev/Next in generation order (arena
//     indices, None at the ends).
//   - PlanBuildings and Decorate lay out at most five buildings per side
//     of each road and hand them to a BuildingPlacer.
//
// Errors:
//
//   - ErrInvalidWidth from NewAssembler.
//   - ErrNilLattice from Assemble, ErrNilNetwork from Decorate.
package roads
