package trace

import (
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Frame projects the first n steps of t onto g and returns one Visual per
// cell, indexed [row][col]. Source and Target always show as themselves;
// obstacles come from g. n is clamped to [0, t.Len()].
// Complexity: O(R×C + n).
func Frame(g *grid.Grid, t *Trace, n int) [][]Visual {
	board := make([][]Visual, g.Rows())
	for r := range board {
		board[r] = make([]Visual, g.Cols())
		for c := range board[r] {
			switch g.Role(grid.Position{Row: r, Col: c}) {
			case grid.Obstacle:
				board[r][c] = VisualObstacle
			case grid.Source:
				board[r][c] = VisualSource
			case grid.Target:
				board[r][c] = VisualTarget
			case grid.Empty:
				board[r][c] = VisualEmpty
			}
		}
	}
	if t == nil {
		return board
	}
	if n > t.Len() {
		n = t.Len()
	}
	for i := 0; i < n; i++ {
		st := t.steps[i]
		if g.InBounds(st.Pos) {
			board[st.Pos.Row][st.Pos.Col] = visualOf(st.Kind)
		}
	}

	return board
}

// Render writes a frame as text, one line per row, using Visual.Glyph.
func Render(board [][]Visual) string {
	var sb strings.Builder
	for r, row := range board {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			sb.WriteByte(v.Glyph())
		}
	}

	return sb.String()
}
