package roads

import "github.com/katalvlaran/roadnet/geom"

// MaxBuildingsPerSide bounds the slots planned along one side of a road.
const MaxBuildingsPerSide = 5

// PlanBuildings lays out building slots along both sides of r.
//
// Each side starts one full road width away from A. Slots follow at a
// spacing of length*(1-density) and stay strictly before the far end of the
// road, at most MaxBuildingsPerSide per side. A uniformity below 1 jitters
// each slot along the road by up to ±(1-uniformity)/2 of the spacing, using
// rng (which may be nil when uniformity is 1). A density of 1 or more plans
// nothing.
func PlanBuildings(r Road, density, uniformity float64, rng Rand) []BuildingSlot {
	spacing := r.Length * (1 - density)
	if !(spacing > 0) {
		return nil
	}
	jitter := 1 - uniformity
	if jitter < 0 {
		jitter = 0
	}
	side := r.Direction.Perp().Scale(r.Width)

	slots := make([]BuildingSlot, 0, 2*MaxBuildingsPerSide)
	for _, s := range []Side{SideLeft, SideRight} {
		origin := r.A.Sub(side)
		if s == SideRight {
			origin = r.A.Add(side)
		}
		facing := origin.Sub(r.A).Normalize()
		for k := 1; k <= MaxBuildingsPerSide; k++ {
			along := spacing * float64(k)
			if jitter > 0 && rng != nil {
				along += (rng.Float64() - 0.5) * jitter * spacing
			}
			if along >= r.Length || along <= 0 {
				break
			}
			slots = append(slots, BuildingSlot{
				RoadID:   r.ID,
				Side:     s,
				Position: origin.Add(r.Direction.Scale(along)),
				Facing:   facing,
			})
		}
	}
	return slots
}

// Decorate plans buildings for every road in generation order and hands
// each slot to placer, attaching the references it accepts. lift, when not
// nil, sets each slot's height before placement. It returns the number of
// buildings placed.
func Decorate(n *Network, placer BuildingPlacer, density, uniformity float64, rng Rand, lift func(geom.Vec3) float64) (int, error) {
	if n == nil {
		return 0, ErrNilNetwork
	}
	placed := 0
	n.Walk(func(r *Road) bool {
		for _, slot := range PlanBuildings(*r, density, uniformity, rng) {
			if lift != nil {
				slot.Position = slot.Position.WithY(lift(slot.Position))
			}
			if placer == nil {
				continue
			}
			if ref, ok := placer.PlaceBuilding(slot); ok {
				r.Buildings = append(r.Buildings, ref)
				placed++
			}
		}
		return true
	})
	return placed, nil
}
