package grid

// Distance returns the tentative distance at p, or Infinity when p is out of bounds.
func (g *Grid) Distance(p Position) int {
	if !g.InBounds(p) {
		return Infinity
	}

	return g.cells[g.index(p)].Distance
}

// SetDistance overwrites the tentative distance at p.
func (g *Grid) SetDistance(p Position, d int) {
	if g.InBounds(p) {
		g.cells[g.index(p)].Distance = d
	}
}

// Visited reports whether p has been marked visited in the current run.
func (g *Grid) Visited(p Position) bool {
	return g.InBounds(p) && g.cells[g.index(p)].Visited
}

// MarkVisited flags p as visited. Obstacles are never marked.
func (g *Grid) MarkVisited(p Position) {
	if g.InBounds(p) && g.cells[g.index(p)].Role != Obstacle {
		g.cells[g.index(p)].Visited = true
	}
}

// Predecessor returns the cell p was reached from, if any.
func (g *Grid) Predecessor(p Position) (Position, bool) {
	if !g.InBounds(p) {
		return Position{}, false
	}

	return g.cells[g.index(p)].Predecessor()
}

// SetPredecessor links p back to from. It refuses obstacles and out-of-bounds
// positions on either side and reports whether the link was stored.
func (g *Grid) SetPredecessor(p, from Position) bool {
	if g.Role(p) == Obstacle || g.Role(from) == Obstacle {
		return false
	}
	c := &g.cells[g.index(p)]
	c.pred, c.hasPred = from, true

	return true
}

// Relax lowers the distance at p to d through from when d is smaller than the
// current value. It reports whether p was updated.
func (g *Grid) Relax(p, from Position, d int) bool {
	if g.Role(p) == Obstacle || d >= g.Distance(p) {
		return false
	}
	if !g.SetPredecessor(p, from) {
		return false
	}
	g.cells[g.index(p)].Distance = d

	return true
}
