package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/katalvlaran/roadnet/pathsearch"
	"github.com/katalvlaran/roadnet/preview"
)

func pathCmd(fs *flag.FlagSet) func(context.Context, *env) error {
	from := fs.String("from", "", "Start position as x,y,z (required).")
	to := fs.String("to", "", "Goal position as x,y,z (required).")
	step := fs.Float64("step", 0, "Step length; 0 uses the config value.")
	show := fs.Bool("preview", false, "Show the path in the terminal.")

	return func(ctx context.Context, e *env) error {
		if *from == "" || *to == "" {
			return usageError("path: -from and -to are required")
		}
		start, err := parseVec(*from)
		if err != nil {
			return usageError("path: -from %v", err)
		}
		goal, err := parseVec(*to)
		if err != nil {
			return usageError("path: -to %v", err)
		}

		world, err := e.cfg.Terrain.World()
		if err != nil {
			return err
		}
		opts := e.cfg.Search.Options()
		if *step != 0 {
			opts = append(opts, pathsearch.WithStep(*step))
		}
		opts = append(opts, pathsearch.WithContext(ctx), pathsearch.WithLogger(e.logger))

		res, err := pathsearch.Search(world, start, goal, opts...)
		if err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		fmt.Fprintf(e.out, "status: %s\n", res.Status)
		fmt.Fprintf(e.out, "iterations: %d, nodes: %d\n", res.Iterations, res.Nodes)
		if !res.Found() {
			return &ExitError{Code: 1, Message: fmt.Sprintf("no path: %s", res.Status)}
		}
		fmt.Fprintf(e.out, "cost: %g\n", res.Cost)
		path := res.Forward()
		for _, p := range path {
			fmt.Fprintln(e.out, p)
		}

		if !*show {
			return nil
		}
		return showScene(ctx, preview.Scene{
			Width: e.cfg.Terrain.Width,
			Depth: e.cfg.Terrain.Depth,
			Path:  path,
		})
	}
}
