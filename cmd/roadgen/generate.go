package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/roadnet/mapgen"
	"github.com/katalvlaran/roadnet/preview"
	"github.com/katalvlaran/roadnet/splatmap"
)

func generateCmd(fs *flag.FlagSet) func(context.Context, *env) error {
	seed := fs.Int64("seed", 0, "RNG seed; 0 uses the config value or the clock.")
	strategy := fs.String("strategy", "", "Growth strategy: 'weighted' or 'maze'.")
	theme := fs.String("theme", "", "Building theme.")
	show := fs.Bool("preview", false, "Show the map in the terminal.")

	return func(ctx context.Context, e *env) error {
		cfg := e.cfg.Map
		if e.visited("seed") {
			cfg.Seed = *seed
		}
		if *strategy != "" {
			cfg.Strategy = *strategy
		}
		if *theme != "" {
			cfg.Theme = *theme
		}

		m, splat, err := generate(ctx, e, cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(e.out, "seed: %d\n", m.Seed)
		fmt.Fprintf(e.out, "strategy: %s (%d iterations)\n", m.Growth.Strategy, m.Growth.Iterations)
		fmt.Fprintf(e.out, "lattice: %dx%d active of %dx%d\n", m.Lattice.ActiveCols, m.Lattice.ActiveRows, m.Lattice.Cols, m.Lattice.Rows)
		fmt.Fprintf(e.out, "links: %d\n", m.Lattice.LinkCount())
		fmt.Fprintf(e.out, "roads: %d (%d rejected, %.1f total length)\n", m.Network.Len(), m.Network.Rejected, m.Network.TotalLength())
		fmt.Fprintf(e.out, "buildings: %d\n", m.Buildings)
		fmt.Fprintf(e.out, "markers: %d\n", len(m.Markers))
		fmt.Fprintf(e.out, "road coverage: %.1f%%\n", splat.RoadFraction()*100)

		if !*show {
			return nil
		}
		return showScene(ctx, preview.Scene{
			Width:   e.cfg.Terrain.Width,
			Depth:   e.cfg.Terrain.Depth,
			Lattice: m.Lattice,
			Network: m.Network,
			Markers: m.Markers,
			Splat:   splat,
		})
	}
}

// generate runs one pass over the configured terrain, painting onto a
// fresh splat map.
func generate(ctx context.Context, e *env, cfg mapgen.MapConfig) (*mapgen.Map, *splatmap.Map, error) {
	file := e.cfg
	file.Map = cfg
	if err := file.Validate(); err != nil {
		return nil, nil, &ExitError{Code: 2, Message: err.Error()}
	}
	ground, err := file.Terrain.Ground()
	if err != nil {
		return nil, nil, err
	}
	splat, err := file.Splat()
	if err != nil {
		return nil, nil, err
	}
	gen, err := mapgen.NewGenerator(ground,
		mapgen.WithPainter(splat),
		mapgen.WithBuildingPlacer(mapgen.NewCatalogPlacer(nil, cfg.Seed)),
		mapgen.WithLogger(e.logger),
	)
	if err != nil {
		return nil, nil, err
	}
	m, err := gen.Generate(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return m, splat, nil
}

func showScene(ctx context.Context, sc preview.Scene) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	defer screen.Fini()
	return preview.Run(ctx, screen, sc, preview.DefaultTheme())
}
