// Package weighting implements attractor-biased edge scoring and
// cumulative-distribution sampling for the weighted random walk.
//
// Overview:
//
//   - LogisticSigmoid(x, bias) = 1 / (1 + e^(-x*bias)).
//   - EdgeWeight blends a distance-to-attractor sigmoid and a heading
//     sigmoid into a weight in (0, 1).
//   - Normalize and Sample turn weights into a draw for a uniform u.
//
// Every function is pure: identical inputs give bit-identical outputs.
//
// Sampling covers all brackets including the last one; a u left uncovered by
// floating-point rounding falls back to the last index.
package weighting
