// File: trace/example_test.go
package trace_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/trace"
)

// ExamplePlayer steps a BFS trace and renders the final frame.
func ExamplePlayer() {
	g := grid.MustParse(`
		S.#
		..T
	`)
	res, _ := search.Run(g, search.BFS)
	tr := trace.Build(search.BFS, res, g.Source(), g.Target())

	p := trace.NewPlayer(tr)
	for {
		cs, err := p.Step()
		if err != nil {
			fmt.Println(err)
			break
		}
		fmt.Println(cs.Index, cs.Kind, cs.Pos)
	}
	fmt.Println(trace.Render(trace.Frame(g, tr, tr.Len())))
	// Output:
	// 0 explored (1,0)
	// 1 explored (0,1)
	// 2 explored (1,1)
	// 3 path (1,0)
	// 4 path (1,1)
	// trace: playback complete
	// S+#
	// **T
}
