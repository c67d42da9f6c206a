package terrain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/geom"
	"github.com/katalvlaran/roadnet/terrain"
)

func TestNewHeightfield_Errors(t *testing.T) {
	_, err := terrain.NewHeightfield(0, 10, 2, make([]float64, 4))
	assert.ErrorIs(t, err, terrain.ErrBadExtents)
	_, err = terrain.NewHeightfield(10, math.Inf(1), 2, make([]float64, 4))
	assert.ErrorIs(t, err, terrain.ErrBadExtents)
	_, err = terrain.NewHeightfield(10, 10, 1, make([]float64, 1))
	assert.ErrorIs(t, err, terrain.ErrBadResolution)
	_, err = terrain.NewHeightfield(10, 10, 3, make([]float64, 4))
	assert.ErrorIs(t, err, terrain.ErrHeightCount)
}

func TestSampleGroundHeight_Bilinear(t *testing.T) {
	// Heights rise along X from 0 to 10, constant along Z.
	h, err := terrain.NewHeightfield(100, 100, 2, []float64{0, 10, 0, 10})
	require.NoError(t, err)

	assert.InDelta(t, 0, h.SampleGroundHeight(geom.V(0, 0, 50)), 1e-12)
	assert.InDelta(t, 5, h.SampleGroundHeight(geom.V(50, 0, 20)), 1e-12)
	assert.InDelta(t, 10, h.SampleGroundHeight(geom.V(100, 0, 100)), 1e-12)
	// Outside clamps to the nearest edge.
	assert.InDelta(t, 10, h.SampleGroundHeight(geom.V(250, 0, -5)), 1e-12)

	lo, hi := h.MinMax()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 10.0, hi)
}

func TestInBounds(t *testing.T) {
	h := terrain.NewFlat(100, 50, 0)
	w, d := h.Extents()
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 50.0, d)

	assert.True(t, h.InBounds([]geom.Vec3{geom.V(0, 0, 0), geom.V(100, 9, 50)}))
	assert.False(t, h.InBounds([]geom.Vec3{geom.V(10, 0, 10), geom.V(10, 0, 50.01)}))
	assert.False(t, h.InBounds([]geom.Vec3{geom.V(-0.1, 0, 10)}))
	assert.True(t, h.InBounds(nil))
}

func TestNewNoise_Deterministic(t *testing.T) {
	opts := terrain.DefaultNoiseOptions()
	a, err := terrain.NewNoise(200, 200, 42, opts)
	require.NoError(t, err)
	b, err := terrain.NewNoise(200, 200, 42, opts)
	require.NoError(t, err)
	c, err := terrain.NewNoise(200, 200, 43, opts)
	require.NoError(t, err)

	p := geom.V(73, 0, 121)
	assert.Equal(t, a.SampleGroundHeight(p), b.SampleGroundHeight(p))
	assert.Equal(t, opts.Resolution, a.Resolution())

	lo, hi := a.MinMax()
	assert.GreaterOrEqual(t, lo, 0.0)
	assert.LessOrEqual(t, hi, opts.Amplitude)

	differs := false
	for x := 0.0; x <= 200 && !differs; x += 10 {
		q := geom.V(x, 0, x)
		differs = a.SampleGroundHeight(q) != c.SampleGroundHeight(q)
	}
	assert.True(t, differs)
}

func TestBox_Intersect(t *testing.T) {
	b := terrain.Box{Min: geom.V(0, 0, 10), Max: geom.V(5, 5, 12)}

	d, ok := b.Intersect(geom.V(2, 1, 0), geom.Forward, 20)
	require.True(t, ok)
	assert.InDelta(t, 10, d, 1e-12)

	_, ok = b.Intersect(geom.V(2, 1, 0), geom.Forward, 5)
	assert.False(t, ok, "too short")
	_, ok = b.Intersect(geom.V(7, 1, 0), geom.Forward, 50)
	assert.False(t, ok, "passes beside")
	_, ok = b.Intersect(geom.V(2, 1, 0), geom.Back, 50)
	assert.False(t, ok, "points away")

	d, ok = b.Intersect(geom.V(1, 1, 11), geom.Right, 1)
	require.True(t, ok)
	assert.Zero(t, d, "starts inside")

	assert.True(t, b.Contains(geom.V(5, 5, 12)))
	assert.False(t, b.Contains(geom.V(5, 5, 12.5)))
}

func TestWorld_CastQuery(t *testing.T) {
	ground := terrain.NewFlat(100, 100, 2)
	w := terrain.NewWorld(ground)
	w.AddObstacle(terrain.Box{Min: geom.V(40, 0, 40), Max: geom.V(60, 10, 60)})
	w.AddObstacle(terrain.Box{Min: geom.V(0, 0, 80), Max: geom.V(10, 3, 90), Walkable: true})

	// Ground ray from 5 above a height-2 ground.
	hit := w.CastQuery(geom.V(10, 7, 10), geom.Down, 10000)
	require.True(t, hit.Hit)
	assert.True(t, hit.Walkable)
	assert.InDelta(t, 5, hit.Distance, 1e-12)
	assert.InDelta(t, 2, hit.Point.Y, 1e-12)

	// Starting below the ground sees no ground.
	assert.False(t, w.CastQuery(geom.V(10, 0, 10), geom.Down, 100).Hit)

	// Horizontal ray into the obstacle.
	hit = w.CastQuery(geom.V(30, 5, 50), geom.Right, 20)
	require.True(t, hit.Hit)
	assert.False(t, hit.Walkable)
	assert.InDelta(t, 10, hit.Distance, 1e-12)

	// Walkable box.
	hit = w.CastQuery(geom.V(5, 2, 75), geom.Forward, 10)
	require.True(t, hit.Hit)
	assert.True(t, hit.Walkable)

	// Slanted ray into the ground is found by marching.
	dir := geom.V(1, -1, 0)
	hit = w.CastQuery(geom.V(10, 6, 20), dir, 10)
	require.True(t, hit.Hit)
	assert.InDelta(t, 4*math.Sqrt2, hit.Distance, 1e-4)

	assert.False(t, w.CastQuery(geom.V(10, 6, 20), geom.Zero, 10).Hit)
	assert.False(t, w.CastQuery(geom.V(10, 6, 20), geom.Up, 10).Hit)
}
