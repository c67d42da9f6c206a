// Package preview renders generated maps in a terminal with tcell.
//
// Draw paints a Scene (lattice, roads, markers, splat map and a search
// path) onto any tcell.Screen, which makes it testable against a
// simulation screen. Run adds a minimal event loop for interactive use.
package preview
