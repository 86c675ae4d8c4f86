// Package search runs the three teaching algorithms over a grid.Grid and
// returns the order in which cells were explored plus the reconstructed path.
//
// What
//
//   - Dijkstra: uniform-cost relaxation with a linear-scan selection step over
//     the row-major list of unvisited cells. Ties go to the cell that appears
//     first in row-major order.
//   - BFS: FIFO frontier; a cell is marked visited when enqueued and recorded
//     when dequeued. The first path found is shortest in edge count.
//   - DFS: LIFO frontier; a cell is marked visited when popped, so it may sit on
//     the stack more than once but is processed once. Finds some path, not
//     necessarily the shortest.
//
// Every engine works on a private Clone of the caller's grid with metadata
// reset, so repeated runs never see stale state and the caller's grid is
// never mutated. The working copy is returned in Result.Work for inspection.
//
// Outcomes
//
//   - Source == Target: Path = [Source], Visited empty.
//   - Target unreachable: Visited covers the whole component of Source, Path
//     empty, Found false, err nil. This is a normal terminal outcome.
//
// Determinism
//
//	Neighbors come from grid.Neighbors in the fixed order up, down, left,
//	right, so identical inputs always produce identical Visited and Path.
//
// Complexity (V = cells)
//
//   - Dijkstra: O(V²) time (linear-scan selection), O(V) memory.
//   - BFS, DFS: O(V) time and memory.
//
// Options
//
//   - WithContext(ctx):   cancellation, checked once per expanded cell.
//   - WithOnVisit(fn):    hook per visited cell; returning an error aborts.
//
// Errors
//
//   - ErrGridNil       if the grid pointer is nil.
//   - ErrEndpoint      if source or target is out of bounds or an Obstacle.
//   - ErrAlgorithm     for an unknown Algorithm value or name.
//   - context errors and wrapped OnVisit hook errors.
package search
