package trace_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/trace"
)

func benchTrace(b *testing.B) (*grid.Grid, *trace.Trace) {
	b.Helper()
	g := grid.NewDefault()
	res, err := search.Run(g, search.Dijkstra)
	if err != nil {
		b.Fatalf("setup Run failed: %v", err)
	}

	return g, trace.Build(search.Dijkstra, res, g.Source(), g.Target())
}

// BenchmarkPlayback replays a full default-board trace.
func BenchmarkPlayback(b *testing.B) {
	_, tr := benchTrace(b)
	p := trace.NewPlayer(tr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Reset()
		for {
			if _, err := p.Step(); errors.Is(err, trace.ErrComplete) {
				break
			}
		}
	}
}

// BenchmarkFrame projects the whole trace onto the board.
func BenchmarkFrame(b *testing.B) {
	g, tr := benchTrace(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = trace.Frame(g, tr, tr.Len())
	}
}
