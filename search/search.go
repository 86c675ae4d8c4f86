package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Run executes alg from g.Source() to g.Target().
func Run(g *grid.Grid, alg Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	switch alg {
	case Dijkstra:
		return RunDijkstra(g, g.Source(), g.Target(), opts...)
	case BFS:
		return RunBFS(g, g.Source(), g.Target(), opts...)
	case DFS:
		return RunDFS(g, g.Source(), g.Target(), opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrAlgorithm, alg)
	}
}

// walker holds the state every engine shares: the working copy, options and
// the growing result.
type walker struct {
	work   *grid.Grid
	opts   Options
	source grid.Position
	target grid.Position
	res    *Result
	nbuf   []grid.Position
}

// prepare validates input, applies options and clones g into a fresh working copy.
// When source == target the result is already final: Path = [source].
func prepare(g *grid.Grid, source, target grid.Position, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	for _, p := range [2]grid.Position{source, target} {
		if !g.InBounds(p) || g.Role(p) == grid.Obstacle {
			return nil, fmt.Errorf("%w: %v", ErrEndpoint, p)
		}
	}

	work := g.Clone()
	work.ResetMetadata()
	w := &walker{
		work:   work,
		opts:   o,
		source: source,
		target: target,
		res: &Result{
			Visited: make([]grid.Position, 0, work.Len()),
			Work:    work,
		},
		nbuf: make([]grid.Position, 0, 4),
	}
	if source == target {
		work.SetDistance(source, 0)
		w.res.Path = []grid.Position{source}
		w.res.Found = true
	}

	return w, nil
}

// cancelled reports a context error, if any.
func (w *walker) cancelled() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// visit appends p to Visited and calls the OnVisit hook.
func (w *walker) visit(p grid.Position) error {
	w.res.Visited = append(w.res.Visited, p)
	if err := w.opts.OnVisit(p, len(w.res.Visited)-1); err != nil {
		return fmt.Errorf("search: OnVisit error at %v: %w", p, err)
	}

	return nil
}

// neighbors resolves p's traversable neighbors into the shared buffer.
func (w *walker) neighbors(p grid.Position) []grid.Position {
	w.nbuf = w.work.AppendNeighbors(w.nbuf[:0], p)
	return w.nbuf
}

// finish reconstructs the path to target when it was reached.
func (w *walker) finish(found bool) *Result {
	w.res.Found = found
	if found {
		w.res.Path = grid.Reconstruct(w.work, w.target)
	}

	return w.res
}
