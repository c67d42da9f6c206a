// Package mapgen ties the engines together into complete generation
// passes: terrain extents to lattice, lattice to grown links, links to
// bounded roads, then painting and building placement.
//
// A Generator keeps the last Map so that Regenerate and Clear can unpaint
// it before it is replaced. MapConfig carries every tunable of a pass and
// DefaultMapConfig reproduces the stock settings.
package mapgen
