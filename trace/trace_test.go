package trace_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/trace"
)

func pos(r, c int) grid.Position { return grid.Position{Row: r, Col: c} }

// run executes alg on layout and builds its trace.
func run(t *testing.T, layout string, alg search.Algorithm) (*grid.Grid, *trace.Trace) {
	t.Helper()
	g := grid.MustParse(layout)
	res, err := search.Run(g, alg)
	require.NoError(t, err)

	return g, trace.Build(alg, res, g.Source(), g.Target())
}

func TestBuild_ExcludesEndpoints(t *testing.T) {
	g, tr := run(t, "S..\n...\n..T", search.BFS)

	assert.Equal(t, search.BFS, tr.Algorithm())
	assert.True(t, tr.Found())
	assert.Equal(t, 7, tr.Explored(), "9 visited minus Source and Target")
	assert.Equal(t, 3, tr.PathLen(), "5 path cells minus Source and Target")
	assert.Equal(t, 10, tr.Len())

	for i, st := range tr.Steps() {
		assert.NotEqual(t, g.Source(), st.Pos)
		assert.NotEqual(t, g.Target(), st.Pos)
		if i < tr.Explored() {
			assert.Equal(t, trace.Explored, st.Kind)
		} else {
			assert.Equal(t, trace.PathStep, st.Kind)
		}
	}
	first, ok := tr.At(0)
	require.True(t, ok)
	assert.Equal(t, trace.Step{Kind: trace.Explored, Pos: pos(1, 0)}, first)
	_, ok = tr.At(tr.Len())
	assert.False(t, ok)
}

func TestBuild_Unreachable(t *testing.T) {
	_, tr := run(t, "S.#T", search.Dijkstra)
	assert.False(t, tr.Found())
	assert.Equal(t, 0, tr.PathLen())
	assert.Equal(t, 1, tr.Len(), "only (0,1) is explored and shown")
}

func TestBuild_NilResult(t *testing.T) {
	tr := trace.Build(search.DFS, nil, pos(0, 0), pos(0, 1))
	assert.Equal(t, 0, tr.Len())
	assert.False(t, tr.Found())
}

func TestSteps_IsCopy(t *testing.T) {
	_, tr := run(t, "S..T", search.BFS)
	steps := tr.Steps()
	require.NotEmpty(t, steps)
	steps[0].Pos = pos(9, 9)
	first, _ := tr.At(0)
	assert.Equal(t, pos(0, 1), first.Pos)
}

func TestFrameAndRender(t *testing.T) {
	g, tr := run(t, "S..\n.#.\n..T", search.BFS)

	assert.Equal(t, "S..\n.#.\n..T", trace.Render(trace.Frame(g, tr, 0)))
	assert.Equal(t, "S..\n+#.\n..T", trace.Render(trace.Frame(g, tr, 1)))
	// BFS explores (1,0) (0,1) (2,0) (0,2) (2,1) (1,2), then paints the path.
	assert.Equal(t, "S++\n+#+\n++T", trace.Render(trace.Frame(g, tr, tr.Explored())))
	assert.Equal(t, "S++\n*#+\n**T", trace.Render(trace.Frame(g, tr, tr.Len()+10)))
	assert.Equal(t, "S..\n.#.\n..T", trace.Render(trace.Frame(g, nil, 5)))
}

func TestIntervalForSpeed(t *testing.T) {
	assert.Equal(t, 51*time.Millisecond, trace.IntervalForSpeed(50))
	assert.Equal(t, time.Millisecond, trace.IntervalForSpeed(100))
	assert.Equal(t, 100*time.Millisecond, trace.IntervalForSpeed(1))
	assert.Equal(t, 100*time.Millisecond, trace.IntervalForSpeed(-3))
	assert.Equal(t, time.Millisecond, trace.IntervalForSpeed(1000))
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "explored", trace.Explored.String())
	assert.Equal(t, "path", trace.PathStep.String())
	assert.Equal(t, "kind(5)", trace.Kind(5).String())
	assert.Equal(t, "idle", trace.Idle.String())
	assert.Equal(t, "playing", trace.Playing.String())
	assert.Equal(t, "paused", trace.Paused.String())
	assert.Equal(t, "complete", trace.Complete.String())
	assert.Equal(t, "state(9)", trace.State(9).String())
}
