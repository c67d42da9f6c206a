// Package roadnet grows procedural road networks on a 2D lattice and
// searches paths across 3D terrain.
//
// A generation pass flows through four stages:
//
//	lattice/    grid index space over the terrain, arena-indexed links
//	weighting/  sigmoid scoring of candidate links against an attractor
//	growth/     weighted walk and maze walk strategies that create links
//	roads/      width-extruded road segments, bounds checks, building slots
//
// Supporting packages:
//
//	geom/       3D vectors
//	terrain/    heightfields (flat or opensimplex noise) with box obstacles
//	splatmap/   two-layer alpha map the roads are painted onto
//	pathsearch/ best-first search over a ray-cast World
//	mapgen/     one-call orchestration with regeneration
//	config/     HCL configuration files
//	preview/    tcell terminal renderer
//	server/     gorilla/mux JSON API
//	ctxlog/     slog logger carried in a context
//
// Quick ASCII example of a grown chain on a 4×3 lattice:
//
//	o───o───o   o
//	        │
//	o   o───o   o
//	    │
//	o   o───o───o
//
// The roadgen command under cmd/ ties everything together:
//
//	go run ./cmd/roadgen generate -seed 7 -preview
//	go run ./cmd/roadgen path -from 10,0,10 -to 90,0,90
//	go run ./cmd/roadgen serve -addr :8080
package roadnet
