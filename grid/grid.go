// Package grid provides the editable pathfinding board and its search metadata.
package grid

import (
	"fmt"
)

// Grid is a fixed-size, row-major matrix of cells with exactly one Source and
// one Target. The zero value is not usable; construct with New or NewDefault.
type Grid struct {
	rows, cols int
	cells      []Cell
	source     Position
	target     Position
	locked     bool
}

// New constructs a rows×cols grid of Empty cells with Source and Target placed.
// Returns ErrInvalidPlacement for non-positive dimensions, out-of-bounds
// endpoints, or source == target.
// Complexity: O(R×C).
func New(rows, cols int, source, target Position) (*Grid, error) {
	g := &Grid{}
	if err := g.Initialize(rows, cols, source, target); err != nil {
		return nil, err
	}

	return g, nil
}

// NewDefault constructs the classic 20×20 board with Source at (5,5) and Target at (15,15).
func NewDefault() *Grid {
	g, err := New(DefaultRows, DefaultCols, DefaultSource, DefaultTarget)
	if err != nil {
		panic(err) // defaults are constant and valid
	}

	return g
}

// Initialize (re)builds the grid with new dimensions and endpoints, discarding
// every obstacle and all metadata. On error the grid is left unchanged.
func (g *Grid) Initialize(rows, cols int, source, target Position) error {
	if g.locked {
		return ErrGridLocked
	}
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidPlacement, rows, cols)
	}
	in := func(p Position) bool { return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols }
	if !in(source) {
		return fmt.Errorf("%w: source %v outside %dx%d", ErrInvalidPlacement, source, rows, cols)
	}
	if !in(target) {
		return fmt.Errorf("%w: target %v outside %dx%d", ErrInvalidPlacement, target, rows, cols)
	}
	if source == target {
		return fmt.Errorf("%w: source and target both at %v", ErrInvalidPlacement, source)
	}

	cells := make([]Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells[r*cols+c] = Cell{Pos: Position{Row: r, Col: c}, Role: Empty, Distance: Infinity}
		}
	}
	g.rows, g.cols, g.cells = rows, cols, cells
	g.source, g.target = source, target
	g.cells[g.index(source)].Role = Source
	g.cells[g.index(target)].Role = Target

	return nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// Source returns the Source position.
func (g *Grid) Source() Position { return g.source }

// Target returns the Target position.
func (g *Grid) Target() Position { return g.target }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// index maps p to its row-major slot: Row*cols + Col.
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Position converts a row-major index back to a Position.
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// Cell returns a copy of the cell at p.
func (g *Grid) Cell(p Position) (Cell, error) {
	if !g.InBounds(p) {
		return Cell{}, fmt.Errorf("%w: %v outside %dx%d", ErrInvalidPlacement, p, g.rows, g.cols)
	}

	return g.cells[g.index(p)], nil
}

// Role returns the role at p; out-of-bounds positions report Obstacle.
func (g *Grid) Role(p Position) Role {
	if !g.InBounds(p) {
		return Obstacle
	}

	return g.cells[g.index(p)].Role
}

// Cells returns a copy of all cells in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)

	return out
}

// Obstacles lists obstacle positions in row-major order.
func (g *Grid) Obstacles() []Position {
	var out []Position
	for _, c := range g.cells {
		if c.Role == Obstacle {
			out = append(out, c.Pos)
		}
	}

	return out
}

// Lock marks a run as in progress; structural edits fail until Unlock.
func (g *Grid) Lock() { g.locked = true }

// Unlock ends the run-in-progress state.
func (g *Grid) Unlock() { g.locked = false }

// Locked reports whether structural edits are currently rejected.
func (g *Grid) Locked() bool { return g.locked }

// Clone returns a deep, unlocked copy of g including metadata.
// Complexity: O(R×C).
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)

	return &Grid{
		rows:   g.rows,
		cols:   g.cols,
		cells:  cells,
		source: g.source,
		target: g.target,
	}
}

// Equal reports whether g and o have identical dimensions, roles, and metadata.
// The lock flag is not compared.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols || g.source != o.source || g.target != o.target {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}
