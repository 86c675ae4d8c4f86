// Package gridpath is a grid pathfinding engine that records every search as
// a replayable step trace.
//
// 🚀 What is gridpath?
//
//	A small, deterministic library for four-connected unit-cost grids:
//		• Grid model: cells, roles (Empty, Obstacle, Source, Target), edits
//		• Neighbor resolution: up, down, left, right, obstacles excluded
//		• Engines: Dijkstra (linear scan), BFS, DFS
//		• Path reconstruction from predecessor links
//		• Trace player: pull-based Step / Play / Pause / Resume / Reset
//
// ✨ Why gridpath?
//
//   - Deterministic – fixed neighbor order and first-minimum tie-breaks
//   - Replayable – a run is computed once and replayed any number of times
//   - Timing-free core – callers own the clock; the player never sleeps
//
// Packages:
//
//	grid/         — board, roles, metadata, edits, neighbors, path reconstruction
//	search/       — Dijkstra, BFS and DFS engines plus the Run dispatcher
//	trace/        — run traces, the player and frame projection for renderers
//	session/      — run controller: edit lock, stop, playback delegation
//	config/       — HCL board and playback files
//	cmd/gridpath/ — terminal demo that replays a run as ASCII frames
//
// Quick ASCII example (BFS, '+' explored, '*' path):
//
//	S+#
//	**T
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
