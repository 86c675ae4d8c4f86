// Package grid defines cell roles, positions, and sentinel errors.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid construction and editing.
var (
	// ErrInvalidPlacement indicates out-of-bounds positions, non-positive
	// dimensions, or Source and Target sharing a cell.
	ErrInvalidPlacement = errors.New("grid: invalid placement")

	// ErrOccupiedBySpecial indicates an attempt to move Source onto Target or Target onto Source.
	ErrOccupiedBySpecial = errors.New("grid: position occupied by source or target")

	// ErrGridLocked indicates a structural edit while a run is in progress.
	ErrGridLocked = errors.New("grid: locked while a run is in progress")

	// ErrBadLayout indicates a malformed text layout.
	ErrBadLayout = errors.New("grid: malformed layout")
)

// Infinity is the distance sentinel of a cell no relaxation has reached.
const Infinity = math.MaxInt

// Default board, matching the classic visualizer layout.
const (
	DefaultRows = 20
	DefaultCols = 20
)

var (
	// DefaultSource is the Source position of NewDefault.
	DefaultSource = Position{Row: 5, Col: 5}
	// DefaultTarget is the Target position of NewDefault.
	DefaultTarget = Position{Row: 15, Col: 15}
)

// Role is the structural category of a cell.
type Role int

const (
	// Empty cells are traversable and carry no special meaning.
	Empty Role = iota
	// Obstacle cells are never traversable.
	Obstacle
	// Source is where every run starts.
	Source
	// Target is where every run tries to arrive.
	Target
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case Empty:
		return "empty"
	case Obstacle:
		return "obstacle"
	case Source:
		return "source"
	case Target:
		return "target"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns the 4-directional step distance between p and q.
func (p Position) Manhattan(q Position) int {
	dr, dc := p.Row-q.Row, p.Col-q.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// Cell is a single grid position with its role and search metadata.
type Cell struct {
	Pos      Position
	Role     Role
	Distance int  // Infinity until relaxed
	Visited  bool // set once per run, never cleared mid-run
	pred     Position
	hasPred  bool
}

// Predecessor returns the cell this one was reached from, if any.
func (c Cell) Predecessor() (Position, bool) {
	return c.pred, c.hasPred
}

// Traversable reports whether a search may enter the cell.
func (c Cell) Traversable() bool {
	return c.Role != Obstacle
}
