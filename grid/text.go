package grid

import (
	"fmt"
	"strings"
)

// Layout alphabet shared by Parse and String.
const (
	glyphEmpty    = '.'
	glyphObstacle = '#'
	glyphSource   = 'S'
	glyphTarget   = 'T'
)

// Parse builds a grid from a text layout: one line per row, '.' for Empty,
// '#' for Obstacle, 'S' for Source and 'T' for Target. Leading and trailing
// blank lines and surrounding spaces on each line are ignored.
// Returns ErrBadLayout for ragged rows, unknown glyphs, or a missing or
// duplicated Source/Target.
func Parse(layout string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(layout), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrBadLayout)
	}
	cols := len(lines[0])

	var (
		source, target   Position
		nSource, nTarget int
		obstacles        []Position
	)
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadLayout, r, len(line), cols)
		}
		for c, ch := range []byte(line) {
			p := Position{Row: r, Col: c}
			switch ch {
			case glyphEmpty:
			case glyphObstacle:
				obstacles = append(obstacles, p)
			case glyphSource:
				source = p
				nSource++
			case glyphTarget:
				target = p
				nTarget++
			default:
				return nil, fmt.Errorf("%w: unknown glyph %q at %v", ErrBadLayout, ch, p)
			}
		}
	}
	if nSource != 1 || nTarget != 1 {
		return nil, fmt.Errorf("%w: need exactly one S and one T, got %d and %d", ErrBadLayout, nSource, nTarget)
	}

	g, err := New(len(lines), cols, source, target)
	if err != nil {
		return nil, err
	}
	for _, p := range obstacles {
		g.block(&g.cells[g.index(p)])
	}

	return g, nil
}

// MustParse is Parse for layouts known to be valid; it panics on error.
func MustParse(layout string) *Grid {
	g, err := Parse(layout)
	if err != nil {
		panic(err)
	}

	return g
}

// Glyph returns the layout character for a role.
func (r Role) Glyph() byte {
	switch r {
	case Obstacle:
		return glyphObstacle
	case Source:
		return glyphSource
	case Target:
		return glyphTarget
	default:
		return glyphEmpty
	}
}

// String renders the grid in the Parse alphabet, rows separated by '\n'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			sb.WriteByte(g.cells[r*g.cols+c].Role.Glyph())
		}
	}

	return sb.String()
}
