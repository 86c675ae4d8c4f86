package search

import (
	"github.com/katalvlaran/gridpath/grid"
)

// RunDijkstra computes a uniform-cost shortest path from source to target.
//
// Every non-Obstacle cell starts in a row-major list of unvisited cells with
// Distance = Infinity, except source (0). Each iteration scans that list for
// the minimum distance; the first minimum in list order wins, so ties go to
// the earlier cell in row-major order. The selected cell is marked visited and
// appended to Visited, then every unvisited neighbor is relaxed to
// current+1 with current recorded as predecessor.
//
// The run ends when target is selected (Found) or when the minimum remaining
// distance is Infinity (target unreachable, empty Path).
//
// Complexity: O(V²) time from the linear scan, O(V) memory.
func RunDijkstra(g *grid.Grid, source, target grid.Position, opts ...Option) (*Result, error) {
	w, err := prepare(g, source, target, opts)
	if err != nil {
		return nil, err
	}
	if source == target {
		return w.res, nil
	}

	w.work.SetDistance(source, 0)
	unvisited := make([]grid.Position, 0, w.work.Len())
	for i := 0; i < w.work.Len(); i++ {
		p := w.work.Position(i)
		if w.work.Role(p) != grid.Obstacle {
			unvisited = append(unvisited, p)
		}
	}

	for len(unvisited) > 0 {
		if err = w.cancelled(); err != nil {
			return w.res, err
		}

		// linear scan: strict < keeps the earliest row-major cell on ties
		best := 0
		for i := 1; i < len(unvisited); i++ {
			if w.work.Distance(unvisited[i]) < w.work.Distance(unvisited[best]) {
				best = i
			}
		}
		current := unvisited[best]
		dist := w.work.Distance(current)
		if dist == grid.Infinity {
			break // trapped: everything left is unreachable
		}
		unvisited = append(unvisited[:best], unvisited[best+1:]...)

		w.work.MarkVisited(current)
		if err = w.visit(current); err != nil {
			return w.res, err
		}
		if current == target {
			return w.finish(true), nil
		}

		for _, n := range w.neighbors(current) {
			if !w.work.Visited(n) {
				w.work.Relax(n, current, dist+1)
			}
		}
	}

	return w.finish(false), nil
}
