// Package terrain provides the ground the generators and the path search
// run against: a heightfield (flat, explicit samples or OpenSimplex noise)
// and a World that answers cast queries against that ground plus box
// obstacles.
//
// Heightfield supplies the collaborators the generators consume: Extents,
// SampleGroundHeight and InBounds (a roads.BoundsFunc). World implements
// pathsearch.World.
package terrain
