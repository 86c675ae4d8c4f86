package grid

// Reconstruct walks predecessor links backward from target until a cell with
// no predecessor (the Source) is reached, and returns the path Source→target.
//
// It returns nil when target is out of bounds, or when target has no
// predecessor and is not the Source, meaning the run never reached it.
// Complexity: O(path length).
func Reconstruct(g *Grid, target Position) []Position {
	if g == nil || !g.InBounds(target) {
		return nil
	}
	if _, ok := g.Predecessor(target); !ok && target != g.source {
		return nil
	}

	path := make([]Position, 0, target.Manhattan(g.source)+1)
	for cur, steps := target, 0; ; steps++ {
		if steps > len(g.cells) {
			return nil // corrupted links; a simple path never exceeds the cell count
		}
		path = append(path, cur)
		prev, ok := g.Predecessor(cur)
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
