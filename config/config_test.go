package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/config"
	"github.com/katalvlaran/roadnet/geom"
	"github.com/katalvlaran/roadnet/growth"
	"github.com/katalvlaran/roadnet/mapgen"
	"github.com/katalvlaran/roadnet/pathsearch"
	"github.com/katalvlaran/roadnet/terrain"
)

const full = `
terrain {
  width            = 200
  depth            = 100
  kind             = "noise"
  seed             = 7
  octaves          = 2
  splat_resolution = 128

  obstacle {
    min      = [40, 0, 40]
    max      = [60, 20, 60]
  }
  obstacle {
    min      = [0, 0, 0]
    max      = [10, 1, 10]
    walkable = true
  }
}

map {
  cell_length = 20
  theme       = "rural"
  strategy    = "maze"
  seed        = 99
  seed_point  = [terrain.width / 2, 0, terrain.depth / 2]
}

search {
  step      = 2.5
  max_nodes = 100
}
`

func TestParse_Empty(t *testing.T) {
	got, err := config.Parse(nil, "empty.hcl")
	require.NoError(t, err)
	if diff := cmp.Diff(config.Default(), got); diff != "" {
		t.Fatalf("Parse(empty) mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Full(t *testing.T) {
	got, err := config.Parse([]byte(full), "full.hcl")
	require.NoError(t, err)

	want := config.Default()
	want.Terrain.Width = 200
	want.Terrain.Depth = 100
	want.Terrain.Kind = config.KindNoise
	want.Terrain.Seed = 7
	want.Terrain.Noise.Octaves = 2
	want.Terrain.SplatResolution = 128
	want.Terrain.Obstacles = []terrain.Box{
		{Min: geom.V(40, 0, 40), Max: geom.V(60, 20, 60)},
		{Min: geom.V(0, 0, 0), Max: geom.V(10, 1, 10), Walkable: true},
	}
	want.Map.CellLength = 20
	want.Map.Theme = "rural"
	want.Map.Strategy = growth.NameMaze
	want.Map.Seed = 99
	want.Map.SeedPoint = geom.V(100, 0, 50)
	want.Search.Step = 2.5
	want.Search.MaxNodes = 100

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Parse(full) mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		target error
	}{
		{"syntax", `map {`, nil},
		{"unknown block", `roads {}`, nil},
		{"unknown attribute", `map { colour = "red" }`, nil},
		{"short seed point", `map { seed_point = [1, 2] }`, config.ErrBadVector},
		{"short obstacle", `
terrain {
  obstacle {
    min = [0]
    max = [1, 1, 1]
  }
}`, config.ErrBadVector},
		{"unknown kind", `terrain { kind = "lava" }`, config.ErrUnknownTerrain},
		{"bad extents", `terrain { width = 0 }`, terrain.ErrBadExtents},
		{"bad density", `map { density = 2 }`, mapgen.ErrInvalidConfig},
		{"unknown strategy", `map { strategy = "spiral" }`, mapgen.ErrInvalidConfig},
		{"undefined variable", `map { seed_point = [world.width, 0, 0] }`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roadnet.hcl")
	require.NoError(t, os.WriteFile(path, []byte(full), 0o600))

	got, err := config.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, geom.V(100, 0, 50), got.Map.SeedPoint)

	_, err = config.Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
}

func TestTerrain_World(t *testing.T) {
	cfg, err := config.Parse([]byte(`
terrain {
  width  = 50
  depth  = 50
  height = 4
  obstacle {
    min = [10, 0, 10]
    max = [20, 10, 20]
  }
}`), "flat.hcl")
	require.NoError(t, err)

	w, err := cfg.Terrain.World()
	require.NoError(t, err)
	assert.Len(t, w.Obstacles, 1)
	assert.Equal(t, 4.0, w.Ground.SampleGroundHeight(geom.V(25, 0, 25)))

	splat, err := cfg.Splat()
	require.NoError(t, err)
	sw, sh := splat.Size()
	assert.Equal(t, 512, sw)
	assert.Equal(t, 512, sh)
}

func TestTerrain_NoiseHeightOffset(t *testing.T) {
	base := config.Default().Terrain
	base.Width, base.Depth = 100, 100
	base.Kind = config.KindNoise
	base.Seed = 3

	plain, err := base.Ground()
	require.NoError(t, err)

	base.Height = 10
	raised, err := base.Ground()
	require.NoError(t, err)

	p := geom.V(50, 0, 50)
	assert.InDelta(t, plain.SampleGroundHeight(p)+10, raised.SampleGroundHeight(p), 1e-9)
}

func TestSearch_Options(t *testing.T) {
	s := config.Default().Search
	s.Step = 1
	s.GoalRadius = 0.5

	o := pathsearch.DefaultOptions()
	for _, opt := range s.Options() {
		opt(&o)
	}
	assert.Equal(t, 1.0, o.Step)
	assert.Equal(t, 0.5, o.GoalRadius)
	assert.Equal(t, pathsearch.DefaultMaxNodes, o.MaxNodes)
}
