// SPDX-License-Identifier: MIT
// Package: roadnet/weighting

package weighting

import (
	"math"

	"github.com/katalvlaran/roadnet/geom"
)

// distanceScale and angleScale bring world distances and degree-valued
// angles into the sigmoid's useful range.
const (
	distanceScale = 100.0
	angleScale    = 100.0
)

// LogisticSigmoid returns 1 / (1 + e^(-x*bias)).
func LogisticSigmoid(x, bias float64) float64 {
	return 1 / (1 + math.Exp(-x*bias))
}

// EdgeWeight scores the edge from -> to against an attractor point.
//
// The distance term is |to - attractor| / 100 shaped by gravityBias. The
// angle term is sin(θ)·(180/π)/100, where θ is the unsigned angle between
// world forward (0, 0, 1) and normalize(from - to), shaped by angleBias.
// The weight is the mean of both sigmoids, so it lies in (0, 1) for finite
// inputs.
func EdgeWeight(from, to, attractor geom.Vec3, gravityBias, angleBias float64) float64 {
	dir := from.Sub(to).Normalize()
	dist := to.Distance(attractor) / distanceScale
	theta := geom.AngleRad(geom.Forward, dir)
	angleTerm := math.Sin(theta) * (180 / math.Pi) / angleScale

	return (LogisticSigmoid(dist, gravityBias) + LogisticSigmoid(angleTerm, angleBias)) / 2
}

// NeighborWeights returns EdgeWeight for every candidate, in candidate order.
func NeighborWeights(from geom.Vec3, candidates []geom.Vec3, attractor geom.Vec3, gravityBias, angleBias float64) []float64 {
	out := make([]float64, len(candidates))
	for i, c := range candidates {
		out[i] = EdgeWeight(from, c, attractor, gravityBias, angleBias)
	}
	return out
}

// Normalize divides weights by their sum. ok is false, and the result nil,
// when the sum is not a positive finite number.
func Normalize(weights []float64) (probs []float64, ok bool) {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if !(sum > 0) || math.IsInf(sum, 0) {
		return nil, false
	}
	probs = make([]float64, len(weights))
	for i, w := range weights {
		probs[i] = w / sum
	}
	return probs, true
}

// Sample picks an index from a probability vector using u in [0, 1): the
// first index whose cumulative bracket [c(i-1), c(i)) contains u. When
// rounding leaves u uncovered the last index is returned. Returns -1 for an
// empty vector.
func Sample(probs []float64, u float64) int {
	if len(probs) == 0 {
		return -1
	}
	cum := 0.0
	for i, p := range probs {
		cum += p
		if u < cum {
			return i
		}
	}
	return len(probs) - 1
}

// Pick combines NeighborWeights, Normalize and Sample. A degenerate weight
// vector selects the last candidate. Returns -1 when there are no candidates.
func Pick(from geom.Vec3, candidates []geom.Vec3, attractor geom.Vec3, gravityBias, angleBias, u float64) int {
	if len(candidates) == 0 {
		return -1
	}
	probs, ok := Normalize(NeighborWeights(from, candidates, attractor, gravityBias, angleBias))
	if !ok {
		return len(candidates) - 1
	}
	return Sample(probs, u)
}
