package mapgen

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/roadnet/roads"
)

// DefaultCatalog maps themes to building kinds.
var DefaultCatalog = map[string][]string{
	"default":    {"house", "shop", "workshop"},
	"industrial": {"warehouse", "factory", "silo"},
	"rural":      {"farmhouse", "barn"},
}

// CatalogPlacer places buildings by drawing a kind from the slot's theme.
// Slots of an unknown theme fall back to "default". It is safe for
// concurrent use.
type CatalogPlacer struct {
	mu      sync.Mutex
	catalog map[string][]string
	rng     *rand.Rand
	placed  int
}

// NewCatalogPlacer returns a placer over catalog (DefaultCatalog when nil).
func NewCatalogPlacer(catalog map[string][]string, seed int64) *CatalogPlacer {
	if catalog == nil {
		catalog = DefaultCatalog
	}
	return &CatalogPlacer{catalog: catalog, rng: rand.New(rand.NewSource(seed))}
}

// PlaceBuilding implements roads.BuildingPlacer. It declines when the
// theme has no kinds.
func (p *CatalogPlacer) PlaceBuilding(slot roads.BuildingSlot) (roads.BuildingRef, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	kinds, ok := p.catalog[slot.Theme]
	if !ok {
		kinds = p.catalog["default"]
	}
	if len(kinds) == 0 {
		return roads.BuildingRef{}, false
	}
	p.placed++
	kind := kinds[p.rng.Intn(len(kinds))]
	return roads.BuildingRef{ID: fmt.Sprintf("%s#%d", kind, p.placed), Slot: slot}, true
}
