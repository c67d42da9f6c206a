// Package config loads roadnet settings from HCL files.
//
// A file has up to three blocks:
//
//	terrain {
//	  width  = 200
//	  depth  = 200
//	  kind   = "noise" // or "flat"
//	  seed   = 7
//	  obstacle {
//	    min = [40, 0, 40]
//	    max = [60, 20, 60]
//	  }
//	}
//
//	map {
//	  strategy   = "maze"
//	  seed_point = [terrain.width / 2, 0, terrain.depth / 2]
//	}
//
//	search {
//	  step = 2.5
//	}
//
// The terrain block is decoded first. The map and search blocks may then
// refer to terrain.width and terrain.depth. Attributes that are left out
// keep the values from Default.
package config
