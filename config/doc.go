// Package config loads a board and playback settings from an HCL file.
//
// File shape:
//
//	grid {
//	  rows      = 20
//	  cols      = 20
//	  source    = [5, 5]
//	  target    = [15, 15]
//	  obstacles = [[3, 4], [3, 5]]
//	}
//	playback {
//	  algorithm = bfs
//	  speed     = 50
//	}
//
// Both blocks are optional; omitted attributes fall back to the classic
// defaults (20×20, Source (5,5), Target (15,15), dijkstra, speed 50).
// A grid block may instead carry a text layout in the grid.Parse alphabet:
//
//	grid {
//	  layout = <<-EOT
//	    S..#
//	    ...T
//	  EOT
//	}
//
// A layout replaces rows, cols, source and target; obstacles listed next to
// a layout are added on top of it. The algorithm names dijkstra, bfs and dfs
// are predeclared variables, so they may be written bare or quoted.
//
// Errors are wrapped with github.com/pkg/errors; every validation failure
// matches ErrInvalidConfig under errors.Is.
package config
