package splatmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/geom"
	"github.com/katalvlaran/roadnet/roads"
	"github.com/katalvlaran/roadnet/splatmap"
)

func newMap(t *testing.T) *splatmap.Map {
	t.Helper()
	// One texel per world unit.
	m, err := splatmap.New(100, 100, 100, 100, splatmap.Brush{Width: 4, Length: 10})
	require.NoError(t, err)
	return m
}

func TestNew_Errors(t *testing.T) {
	_, err := splatmap.New(0, 10, 4, 4, splatmap.Brush{})
	assert.ErrorIs(t, err, splatmap.ErrBadExtents)
	_, err = splatmap.New(10, 10, 0, 4, splatmap.Brush{})
	assert.ErrorIs(t, err, splatmap.ErrBadResolution)
}

func TestPaint_AlongX(t *testing.T) {
	m := newMap(t)
	require.True(t, m.Paint(geom.V(10, 0, 20), geom.Right, false))

	// Along X: 0*2 + 10 + 1 = 11 texels wide, 4*2 + 0 + 0 = 8 deep.
	assert.Equal(t, 1.0, m.Alpha(splatmap.LayerRoad, 10, 20))
	assert.Equal(t, 0.0, m.Alpha(splatmap.LayerGround, 10, 20))
	assert.Equal(t, 1.0, m.Alpha(splatmap.LayerRoad, 20, 27))
	assert.Equal(t, 0.0, m.Alpha(splatmap.LayerRoad, 21, 20))
	assert.Equal(t, 0.0, m.Alpha(splatmap.LayerRoad, 10, 28))
	assert.InDelta(t, 88.0/10000, m.RoadFraction(), 1e-12)

	// Direction sign does not matter.
	m2 := newMap(t)
	m2.Paint(geom.V(10, 0, 20), geom.Left, false)
	assert.Equal(t, m.RoadFraction(), m2.RoadFraction())
}

func TestPaint_ResetRestoresGround(t *testing.T) {
	m := newMap(t)
	m.Paint(geom.V(30, 0, 30), geom.Forward, false)
	require.Greater(t, m.RoadFraction(), 0.0)
	m.Paint(geom.V(30, 0, 30), geom.Forward, true)
	assert.Zero(t, m.RoadFraction())
	assert.Equal(t, 1.0, m.Alpha(splatmap.LayerGround, 30, 30))
}

func TestPaint_EdgesAndClipping(t *testing.T) {
	m := newMap(t)
	assert.False(t, m.Paint(geom.V(0.5, 0, 50), geom.Right, false), "first column")
	assert.False(t, m.Paint(geom.V(50, 0, 100), geom.Right, false), "off the far edge")
	assert.False(t, m.Paint(geom.V(-5, 0, 50), geom.Right, false), "negative")
	assert.Zero(t, m.RoadFraction())

	require.True(t, m.Paint(geom.V(95, 0, 95), geom.Right, false))
	assert.Equal(t, 1.0, m.Alpha(splatmap.LayerRoad, 99, 99))
	assert.Equal(t, 0.0, m.Alpha(splatmap.LayerRoad, 100, 99), "outside reads as zero")
}

func TestPaintNetwork(t *testing.T) {
	as, err := roads.NewAssembler(4, nil)
	require.NoError(t, err)
	n := as.NewNetwork()
	_, _ = as.Append(n, geom.V(20, 0, 20), geom.V(30, 0, 20))
	_, _ = as.Append(n, geom.V(30, 0, 20), geom.V(30, 0, 30))

	m := newMap(t)
	assert.Equal(t, 2, m.PaintNetwork(n, false))
	assert.Greater(t, m.RoadFraction(), 0.0)
	assert.Equal(t, 2, m.PaintNetwork(n, true))
	assert.Zero(t, m.RoadFraction())
	assert.Zero(t, m.PaintNetwork(nil, false))
}
