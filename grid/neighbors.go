package grid

// neighborOffsets lists the 4-directional moves in resolver order: up, down, left, right.
// The order decides traversal tie-breaking and must not change.
var neighborOffsets = [4]Position{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// Neighbors returns the in-bounds, non-Obstacle neighbors of p in the fixed
// order up, down, left, right.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Position {
	return g.AppendNeighbors(make([]Position, 0, len(neighborOffsets)), p)
}

// AppendNeighbors is Neighbors without the allocation: results are appended to dst.
func (g *Grid) AppendNeighbors(dst []Position, p Position) []Position {
	for _, d := range neighborOffsets {
		n := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if !g.InBounds(n) || g.cells[g.index(n)].Role == Obstacle {
			continue
		}
		dst = append(dst, n)
	}

	return dst
}
