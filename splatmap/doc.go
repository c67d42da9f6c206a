// Package splatmap paints roads into a two-layer (ground, road) alpha map
// covering the terrain. Each accepted road is stamped at its anchor corner
// in generation order; regenerating a network unpaints the old roads with
// the same stamps before painting the new ones.
package splatmap
