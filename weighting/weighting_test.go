package weighting_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/geom"
	"github.com/katalvlaran/roadnet/weighting"
)

func TestLogisticSigmoid(t *testing.T) {
	assert.Equal(t, 0.5, weighting.LogisticSigmoid(0, 3))
	assert.Equal(t, 0.5, weighting.LogisticSigmoid(7, 0))
	assert.InDelta(t, 1/(1+math.Exp(-6)), weighting.LogisticSigmoid(2, 3), 1e-15)
	assert.Less(t, weighting.LogisticSigmoid(-1, 1), 0.5)
}

func TestEdgeWeight(t *testing.T) {
	attractor := geom.V(500, 0, 500)
	from := geom.V(10, 0, 10)

	// Moving straight along Z: θ is 180°, sin θ ≈ 0 so the angle term is 0.5.
	to := geom.V(10, 0, 20)
	dist := to.Distance(attractor) / 100
	want := (weighting.LogisticSigmoid(dist, 3) + 0.5) / 2
	assert.InDelta(t, want, weighting.EdgeWeight(from, to, attractor, 3, 5), 1e-12)

	// Moving along X: θ is 90°, the angle term uses 180/π/100.
	to = geom.V(20, 0, 10)
	dist = to.Distance(attractor) / 100
	want = (weighting.LogisticSigmoid(dist, 3) + weighting.LogisticSigmoid(180/math.Pi/100, 5)) / 2
	assert.InDelta(t, want, weighting.EdgeWeight(from, to, attractor, 3, 5), 1e-12)
}

func TestEdgeWeight_Deterministic(t *testing.T) {
	a := weighting.EdgeWeight(geom.V(1, 0, 2), geom.V(3, 0, 5), geom.V(50, 0, 50), 3, 5)
	b := weighting.EdgeWeight(geom.V(1, 0, 2), geom.V(3, 0, 5), geom.V(50, 0, 50), 3, 5)
	assert.Equal(t, a, b)
	assert.Greater(t, a, 0.0)
	assert.Less(t, a, 1.0)
}

func TestNormalize(t *testing.T) {
	probs, ok := weighting.Normalize([]float64{1, 3, 4})
	require.True(t, ok)
	sum := 0.0
	for _, p := range probs {
		assert.GreaterOrEqual(t, p, 0.0)
		sum += p
	}
	assert.InDelta(t, 1, sum, 1e-12)
	assert.InDelta(t, 0.375, probs[1], 1e-12)

	for _, bad := range [][]float64{nil, {0, 0}, {-1, 0.5}, {math.Inf(1), 1}} {
		_, ok := weighting.Normalize(bad)
		assert.False(t, ok, "%v", bad)
	}
}

func TestSample(t *testing.T) {
	probs := []float64{0.25, 0.25, 0.5}
	cases := []struct {
		u    float64
		want int
	}{
		{0, 0},
		{0.2499, 0},
		{0.25, 1},
		{0.49, 1},
		{0.5, 2},
		{0.999, 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, weighting.Sample(probs, tc.u), "u=%v", tc.u)
	}
	// Rounding shortfall falls back to the last index.
	assert.Equal(t, 1, weighting.Sample([]float64{0.3, 0.3}, 0.99))
	assert.Equal(t, -1, weighting.Sample(nil, 0.5))
}

func TestSample_Distribution(t *testing.T) {
	probs := []float64{0.1, 0.6, 0.3}
	counts := make([]int, len(probs))
	const n = 10000
	for k := 0; k < n; k++ {
		u := (float64(k) + 0.5) / n
		counts[weighting.Sample(probs, u)]++
	}
	for i, p := range probs {
		assert.InDelta(t, p, float64(counts[i])/n, 1e-3)
	}
}

func TestPick(t *testing.T) {
	from := geom.V(10, 0, 10)
	cands := []geom.Vec3{geom.V(10, 0, 20), geom.V(20, 0, 10)}
	assert.Equal(t, -1, weighting.Pick(from, nil, geom.Zero, 3, 5, 0.5))
	i := weighting.Pick(from, cands, geom.V(500, 0, 500), 3, 5, 0.0)
	assert.Equal(t, 0, i)
	i = weighting.Pick(from, cands, geom.V(500, 0, 500), 3, 5, 0.9999)
	assert.Equal(t, 1, i)
}
