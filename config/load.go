package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/roadnet/ctxlog"
	"github.com/katalvlaran/roadnet/terrain"
)

// fileRoot decodes the terrain block first; everything else is decoded in
// a second pass once the terrain extents are known.
type fileRoot struct {
	Terrain *terrainBlock `hcl:"terrain,block"`
	Remain  hcl.Body      `hcl:",remain"`
}

type restRoot struct {
	Map    *mapBlock    `hcl:"map,block"`
	Search *searchBlock `hcl:"search,block"`
}

type terrainBlock struct {
	Width           *float64         `hcl:"width,optional"`
	Depth           *float64         `hcl:"depth,optional"`
	Kind            *string          `hcl:"kind,optional"`
	Height          *float64         `hcl:"height,optional"`
	Seed            *int64           `hcl:"seed,optional"`
	Resolution      *int             `hcl:"resolution,optional"`
	Amplitude       *float64         `hcl:"amplitude,optional"`
	Frequency       *float64         `hcl:"frequency,optional"`
	Persistence     *float64         `hcl:"persistence,optional"`
	Octaves         *int             `hcl:"octaves,optional"`
	SplatResolution *int             `hcl:"splat_resolution,optional"`
	Obstacles       []*obstacleBlock `hcl:"obstacle,block"`
}

type obstacleBlock struct {
	Min      []float64 `hcl:"min"`
	Max      []float64 `hcl:"max"`
	Walkable *bool     `hcl:"walkable,optional"`
}

type mapBlock struct {
	CellLength    *float64  `hcl:"cell_length,optional"`
	CellWidth     *float64  `hcl:"cell_width,optional"`
	Theme         *string   `hcl:"theme,optional"`
	Density       *float64  `hcl:"density,optional"`
	Uniformity    *float64  `hcl:"uniformity,optional"`
	GravityWeight *float64  `hcl:"gravity_weight,optional"`
	AngleWeight   *float64  `hcl:"angle_weight,optional"`
	SeedPoint     []float64 `hcl:"seed_point,optional"`
	Strategy      *string   `hcl:"strategy,optional"`
	Seed          *int64    `hcl:"seed,optional"`
	MaxIterations *int      `hcl:"max_iterations,optional"`
}

type searchBlock struct {
	Step          *float64 `hcl:"step,optional"`
	MaxDistanceUp *float64 `hcl:"max_distance_up,optional"`
	GoalRadius    *float64 `hcl:"goal_radius,optional"`
	MaxIterations *int     `hcl:"max_iterations,optional"`
	MaxNodes      *int     `hcl:"max_nodes,optional"`
	GroundRay     *float64 `hcl:"ground_ray,optional"`
}

// Load reads and decodes the HCL file at path.
func Load(ctx context.Context, path string) (File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("loading config", "path", path)

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return File{}, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	cfg, err := decode(f, path)
	if err != nil {
		return File{}, err
	}
	logger.Debug("config loaded",
		"terrain", cfg.Terrain.Kind,
		"width", cfg.Terrain.Width,
		"depth", cfg.Terrain.Depth,
		"strategy", cfg.Map.Strategy,
	)
	return cfg, nil
}

// Parse decodes HCL source; filename is only used in diagnostics.
func Parse(src []byte, filename string) (File, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return File{}, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(f, filename)
}

func decode(f *hcl.File, filename string) (File, error) {
	cfg := Default()

	var root fileRoot
	if diags := gohcl.DecodeBody(f.Body, nil, &root); diags.HasErrors() {
		return File{}, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if root.Terrain != nil {
		if err := root.Terrain.apply(&cfg.Terrain); err != nil {
			return File{}, fmt.Errorf("%s: %w", filename, err)
		}
	}

	var rest restRoot
	if diags := gohcl.DecodeBody(root.Remain, evalContext(cfg.Terrain), &rest); diags.HasErrors() {
		return File{}, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if rest.Map != nil {
		if err := rest.Map.apply(&cfg); err != nil {
			return File{}, fmt.Errorf("%s: %w", filename, err)
		}
	}
	if rest.Search != nil {
		rest.Search.apply(&cfg.Search)
	}

	if err := cfg.Validate(); err != nil {
		return File{}, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// evalContext exposes terrain.width and terrain.depth to the map and
// search blocks.
func evalContext(t Terrain) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"terrain": cty.ObjectVal(map[string]cty.Value{
				"width": cty.NumberFloatVal(t.Width),
				"depth": cty.NumberFloatVal(t.Depth),
			}),
		},
	}
}

func (b *terrainBlock) apply(t *Terrain) error {
	set(&t.Width, b.Width)
	set(&t.Depth, b.Depth)
	set(&t.Kind, b.Kind)
	set(&t.Height, b.Height)
	set(&t.Seed, b.Seed)
	set(&t.Noise.Resolution, b.Resolution)
	set(&t.Noise.Amplitude, b.Amplitude)
	set(&t.Noise.Frequency, b.Frequency)
	set(&t.Noise.Persistence, b.Persistence)
	set(&t.Noise.Octaves, b.Octaves)
	set(&t.SplatResolution, b.SplatResolution)

	for i, ob := range b.Obstacles {
		lo, err := vec3(fmt.Sprintf("obstacle[%d].min", i), ob.Min)
		if err != nil {
			return err
		}
		hi, err := vec3(fmt.Sprintf("obstacle[%d].max", i), ob.Max)
		if err != nil {
			return err
		}
		box := terrain.Box{Min: lo, Max: hi}
		set(&box.Walkable, ob.Walkable)
		t.Obstacles = append(t.Obstacles, box)
	}
	return nil
}

func (b *mapBlock) apply(cfg *File) error {
	m := &cfg.Map
	set(&m.CellLength, b.CellLength)
	set(&m.CellWidth, b.CellWidth)
	set(&m.Theme, b.Theme)
	set(&m.Density, b.Density)
	set(&m.Uniformity, b.Uniformity)
	set(&m.GravityWeight, b.GravityWeight)
	set(&m.AngleWeight, b.AngleWeight)
	set(&m.Strategy, b.Strategy)
	set(&m.Seed, b.Seed)
	set(&m.MaxIterations, b.MaxIterations)
	if b.SeedPoint != nil {
		p, err := vec3("seed_point", b.SeedPoint)
		if err != nil {
			return err
		}
		m.SeedPoint = p
	}
	return nil
}

func (b *searchBlock) apply(s *Search) {
	set(&s.Step, b.Step)
	set(&s.MaxDistanceUp, b.MaxDistanceUp)
	set(&s.GoalRadius, b.GoalRadius)
	set(&s.MaxIterations, b.MaxIterations)
	set(&s.MaxNodes, b.MaxNodes)
	set(&s.GroundRay, b.GroundRay)
}

// set copies *v into dst when the attribute was present.
func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
