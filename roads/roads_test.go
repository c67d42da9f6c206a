package roads_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/geom"
	"github.com/katalvlaran/roadnet/growth"
	"github.com/katalvlaran/roadnet/lattice"
	"github.com/katalvlaran/roadnet/roads"
)

const eps = 1e-9

func assertVec(t *testing.T, want, got geom.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, eps, "y of %v", got)
	assert.InDelta(t, want.Z, got.Z, eps, "z of %v", got)
}

// box accepts points with 0 <= x <= w and 0 <= z <= d.
func box(w, d float64) roads.BoundsFunc {
	return func(pts []geom.Vec3) bool {
		for _, p := range pts {
			if p.X < 0 || p.X > w || p.Z < 0 || p.Z > d {
				return false
			}
		}
		return true
	}
}

func TestBoundary(t *testing.T) {
	g := roads.Boundary(geom.V(10, 0, 10), geom.V(10, 0, 20), 4)

	assertVec(t, geom.Forward, g.Direction)
	assertVec(t, geom.V(2, 0, 0), g.Offset)
	assertVec(t, geom.V(8, 0, 10), g.Left)
	assertVec(t, geom.V(12, 0, 10), g.Right)
	assertVec(t, geom.V(8, 0, 20), g.Corners[2])
	assertVec(t, geom.V(12, 0, 20), g.Corners[3])
	assertVec(t, geom.V(8, 0, 10), g.Anchor)

	// Boundary points sit width/2 from the centre line on either side.
	assert.InDelta(t, 2, g.Left.Distance(geom.V(10, 0, 10)), eps)
	assert.InDelta(t, 0, g.Offset.Dot(g.Direction), eps)
}

// TestBoundary_AnchorTieBreak pins the corner scan: a later corner replaces
// the pick when either coordinate is smaller, even if the other is larger.
func TestBoundary_AnchorTieBreak(t *testing.T) {
	// Diagonal towards +X,-Z: corners A-off, A+off, B-off, B+off.
	g := roads.Boundary(geom.V(0, 0, 10), geom.V(10, 0, 0), 2)
	s := g.Corners[0]
	for _, c := range g.Corners[1:] {
		if c.X < s.X || c.Z < s.Z {
			s = c
		}
	}
	assert.Equal(t, s, g.Anchor)
	// B-off replaces A+off on Z alone although its X is the largest, then
	// B+off replaces it on X: the far corner wins, not the minimum-X corner.
	assert.Equal(t, g.Corners[3], g.Anchor)
	assert.Less(t, g.Corners[1].X, g.Anchor.X)
}

func TestNewAssembler_Errors(t *testing.T) {
	for _, w := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := roads.NewAssembler(w, nil)
		assert.ErrorIs(t, err, roads.ErrInvalidWidth, "width %v", w)
	}
	as, err := roads.NewAssembler(2, nil)
	require.NoError(t, err)
	_, err = as.Assemble(nil)
	assert.ErrorIs(t, err, roads.ErrNilLattice)
}

func TestAppend_LinksAndRejects(t *testing.T) {
	as, err := roads.NewAssembler(4, box(100, 100))
	require.NoError(t, err)
	n := as.NewNetwork()

	id0, ok := as.Append(n, geom.V(10, 0, 10), geom.V(20, 0, 10))
	require.True(t, ok)
	_, ok = as.Append(n, geom.V(99, 0, 10), geom.V(99, 0, 20)) // corner at x=101
	assert.False(t, ok)
	_, ok = as.Append(n, geom.V(5, 0, 5), geom.V(5, 0, 5))
	assert.False(t, ok)
	id1, ok := as.Append(n, geom.V(20, 0, 10), geom.V(20, 0, 20))
	require.True(t, ok)

	assert.Equal(t, 2, n.Len())
	assert.Equal(t, 2, n.Rejected)
	assert.Equal(t, id0, n.First)
	assert.Equal(t, id1, n.Last)
	assert.Equal(t, id1, n.Roads[id0].Next)
	assert.Equal(t, id0, n.Roads[id1].Prev)
	assert.Equal(t, roads.None, n.Roads[id0].Prev)
	assert.Equal(t, roads.None, n.Roads[id1].Next)
	assert.InDelta(t, 20, n.TotalLength(), eps)
}

func TestAssemble_FromLattice(t *testing.T) {
	l, err := lattice.New(100, 100, 10)
	require.NoError(t, err)
	_, err = growth.Grow(l, growth.WeightedWalk, growth.WithSeed(99))
	require.NoError(t, err)

	as, err := roads.NewAssembler(10, box(100, 100))
	require.NoError(t, err)
	n, err := as.Assemble(l)
	require.NoError(t, err)

	assert.Equal(t, l.LinkCount(), n.Len()+n.Rejected)
	count := 0
	n.Walk(func(r *roads.Road) bool {
		assert.Equal(t, count, r.ID)
		assert.Equal(t, l.Node(r.From).Position, r.A)
		assert.Equal(t, l.Node(r.To).Position, r.B)
		assert.InDelta(t, 10, r.Width, eps)
		assert.True(t, box(100, 100)(r.Points()))
		count++
		return true
	})
	assert.Equal(t, n.Len(), count)
}

func TestAssemble_RejectsNearBorder(t *testing.T) {
	l, err := lattice.New(100, 100, 10)
	require.NoError(t, err)
	// Row y=0 sits at z=10; a 30-wide road along X pokes below z=0.
	require.NoError(t, l.Link(l.Index(0, 0), l.Index(1, 0)))
	require.NoError(t, l.Link(l.Index(3, 3), l.Index(3, 4)))

	as, err := roads.NewAssembler(30, box(100, 100))
	require.NoError(t, err)
	n, err := as.Assemble(l)
	require.NoError(t, err)
	assert.Equal(t, 1, n.Len())
	assert.Equal(t, 1, n.Rejected)
	assert.Equal(t, l.Index(3, 3), n.Roads[0].From)
}

func TestPlanBuildings(t *testing.T) {
	as, err := roads.NewAssembler(2, nil)
	require.NoError(t, err)
	n := as.NewNetwork()
	_, ok := as.Append(n, geom.V(0, 0, 0), geom.V(0, 0, 100))
	require.True(t, ok)
	r := n.Roads[0]

	slots := roads.PlanBuildings(r, 0.7, 1, nil)
	// Spacing 30: slots at 30, 60, 90 on each side.
	require.Len(t, slots, 6)
	for _, s := range slots {
		assert.Equal(t, r.ID, s.RoadID)
		assert.InDelta(t, 2, math.Abs(s.Position.X), eps)
		assert.InDelta(t, 1, s.Facing.Length(), eps)
		assert.Greater(t, s.Facing.X*s.Position.X, 0.0, "faces away from the road")
	}
	assert.InDelta(t, 30, slots[0].Position.Z, eps)

	assert.Empty(t, roads.PlanBuildings(r, 1, 1, nil))
	assert.Len(t, roads.PlanBuildings(r, 0.99, 1, nil), 2*roads.MaxBuildingsPerSide)
}

type countingPlacer struct{ n int }

func (p *countingPlacer) PlaceBuilding(s roads.BuildingSlot) (roads.BuildingRef, bool) {
	p.n++
	if p.n%2 == 0 {
		return roads.BuildingRef{}, false
	}
	return roads.BuildingRef{ID: fmt.Sprintf("b%d", p.n), Slot: s}, true
}

func TestDecorate(t *testing.T) {
	as, err := roads.NewAssembler(2, nil)
	require.NoError(t, err)
	n := as.NewNetwork()
	_, _ = as.Append(n, geom.V(0, 0, 0), geom.V(0, 0, 100))

	p := &countingPlacer{}
	placed, err := roads.Decorate(n, p, 0.7, 1, nil, func(geom.Vec3) float64 { return 3 })
	require.NoError(t, err)
	assert.Equal(t, 6, p.n)
	assert.Equal(t, 3, placed)
	require.Len(t, n.Roads[0].Buildings, 3)
	assert.Equal(t, 3.0, n.Roads[0].Buildings[0].Slot.Position.Y)
	assert.Equal(t, 3, n.BuildingCount())

	_, err = roads.Decorate(nil, p, 0.5, 1, nil, nil)
	assert.ErrorIs(t, err, roads.ErrNilNetwork)
}
