package grid

import "fmt"

// checkEdit validates the lock flag and bounds for a structural edit at p.
func (g *Grid) checkEdit(p Position) error {
	if g.locked {
		return ErrGridLocked
	}
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v outside %dx%d", ErrInvalidPlacement, p, g.rows, g.cols)
	}

	return nil
}

// SetObstacle toggles p between Obstacle and Empty. It is a no-op on the
// Source and Target cells.
func (g *Grid) SetObstacle(p Position) error {
	if err := g.checkEdit(p); err != nil {
		return err
	}
	c := &g.cells[g.index(p)]
	switch c.Role {
	case Empty:
		g.block(c)
	case Obstacle:
		c.Role = Empty
	case Source, Target:
		// specials are never overwritten by obstacles
	}

	return nil
}

// PlaceObstacle turns p into an Obstacle without toggling, which is what a
// drag-draw gesture wants. It is a no-op on Source, Target, and existing obstacles.
func (g *Grid) PlaceObstacle(p Position) error {
	if err := g.checkEdit(p); err != nil {
		return err
	}
	if c := &g.cells[g.index(p)]; c.Role == Empty {
		g.block(c)
	}

	return nil
}

// Erase turns an Obstacle at p back into Empty. Other roles are left alone.
func (g *Grid) Erase(p Position) error {
	if err := g.checkEdit(p); err != nil {
		return err
	}
	if c := &g.cells[g.index(p)]; c.Role == Obstacle {
		c.Role = Empty
	}

	return nil
}

// block converts c into an Obstacle and drops any search metadata it carried.
func (g *Grid) block(c *Cell) {
	c.Role = Obstacle
	c.Distance = Infinity
	c.Visited = false
	c.pred, c.hasPred = Position{}, false
}

// MoveSource relocates the Source to p. The old Source becomes Empty and an
// obstacle at p is replaced. Returns ErrOccupiedBySpecial if p is the Target.
func (g *Grid) MoveSource(p Position) error {
	if err := g.checkEdit(p); err != nil {
		return err
	}
	if p == g.target {
		return fmt.Errorf("%w: %v is the target", ErrOccupiedBySpecial, p)
	}
	g.cells[g.index(g.source)].Role = Empty
	g.cells[g.index(p)].Role = Source
	g.source = p

	return nil
}

// MoveTarget relocates the Target to p. The old Target becomes Empty and an
// obstacle at p is replaced. Returns ErrOccupiedBySpecial if p is the Source.
func (g *Grid) MoveTarget(p Position) error {
	if err := g.checkEdit(p); err != nil {
		return err
	}
	if p == g.source {
		return fmt.Errorf("%w: %v is the source", ErrOccupiedBySpecial, p)
	}
	g.cells[g.index(g.target)].Role = Empty
	g.cells[g.index(p)].Role = Target
	g.target = p

	return nil
}

// ResetMetadata restores every cell to Distance=Infinity, Visited=false and
// no predecessor. Roles are untouched. Calling it twice equals calling it once.
func (g *Grid) ResetMetadata() {
	for i := range g.cells {
		c := &g.cells[i]
		c.Distance = Infinity
		c.Visited = false
		c.pred, c.hasPred = Position{}, false
	}
}

// ClearObstacles turns every Obstacle into Empty. Source and Target stay put.
func (g *Grid) ClearObstacles() error {
	if g.locked {
		return ErrGridLocked
	}
	for i := range g.cells {
		if g.cells[i].Role == Obstacle {
			g.cells[i].Role = Empty
		}
	}

	return nil
}

// Clear is the explicit full clear: obstacles removed and metadata reset.
func (g *Grid) Clear() error {
	if err := g.ClearObstacles(); err != nil {
		return err
	}
	g.ResetMetadata()

	return nil
}
