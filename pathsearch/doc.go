// Package pathsearch finds paths through continuous 3D space with an
// informed best-first search over fixed-length axis moves.
//
// Overview:
//
//   - Every node stores g (steps walked), h (straight-line distance to the
//     goal) and their sum; the open node with the smallest sum is expanded
//     next, earliest first on ties.
//   - Expansion tries the six axis directions scaled by Step. One downward
//     ground ray per expansion rejects every move when the node hangs more
//     than MaxDistanceUp above the ground; a cast hitting a non-walkable
//     surface within Step rejects that move; a position created before is
//     never created again.
//   - The search ends with a path when an expanded node lies within
//     GoalRadius of the goal, or without one on the iteration cap, the node
//     cap, an empty frontier or a done context.
//
// Complexity:
//
//   - Time:  O(I×F) for I expansions over a frontier of at most F nodes
//     (linear frontier scan).
//   - Space: O(N) for N created nodes.
//
// Errors (sentinel):
//
//   - ErrNilWorld, ErrBadPoint, ErrBadStep, ErrBadLimit for invalid input.
//
// Failing to find a path is reported through Result.Status, never as an error.
package pathsearch
