package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/roadnet/geom"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := geom.V(1, 2, 3)
	b := geom.V(4, -1, 0.5)

	assert.Equal(t, geom.V(5, 1, 3.5), a.Add(b))
	assert.Equal(t, geom.V(-3, 3, 2.5), a.Sub(b))
	assert.Equal(t, geom.V(2, 4, 6), a.Scale(2))
	assert.Equal(t, geom.V(-1, -2, -3), a.Neg())
	assert.InDelta(t, 4-2+1.5, a.Dot(b), 1e-12)
	assert.InDelta(t, math.Sqrt(14), a.Length(), 1e-12)
	assert.InDelta(t, 5, geom.V(0, 0, 0).Distance(geom.V(3, 0, 4)), 1e-12)
}

func TestVec3_Normalize(t *testing.T) {
	n := geom.V(3, 0, 4).Normalize()
	assert.InDelta(t, 1, n.Length(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.Equal(t, geom.Zero, geom.V(1e-7, 0, 0).Normalize())
}

func TestVec3_Perp(t *testing.T) {
	cases := []struct {
		name string
		in   geom.Vec3
		want geom.Vec3
	}{
		{"Forward", geom.Forward, geom.Right},
		{"Right", geom.Right, geom.Back},
		{"Back", geom.Back, geom.Left},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Perp()
			assert.InDelta(t, tc.want.X, got.X, 1e-12)
			assert.InDelta(t, tc.want.Z, got.Z, 1e-12)
			assert.InDelta(t, 0, got.Dot(tc.in), 1e-12)
		})
	}
}

func TestAngle(t *testing.T) {
	assert.InDelta(t, 90, geom.Angle(geom.Forward, geom.Right), 1e-9)
	assert.InDelta(t, 180, geom.Angle(geom.Forward, geom.Back), 1e-9)
	assert.InDelta(t, 45, geom.Angle(geom.Forward, geom.V(1, 0, 1)), 1e-9)
	assert.Equal(t, 0.0, geom.AngleRad(geom.Zero, geom.Forward))
}

func TestVec3_IsFinite(t *testing.T) {
	assert.True(t, geom.V(1, 2, 3).IsFinite())
	assert.False(t, geom.V(math.NaN(), 0, 0).IsFinite())
	assert.False(t, geom.V(0, math.Inf(1), 0).IsFinite())
}
