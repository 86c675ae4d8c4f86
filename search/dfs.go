package search

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/gridpath/grid"
)

// frame is a stack entry: a cell and the cell it was pushed from.
type frame struct {
	pos    grid.Position
	parent grid.Position
	root   bool
}

// RunDFS performs depth-first traversal from source toward target.
//
// A cell is marked visited only when popped, so it may be pushed several
// times but is processed once; its predecessor is the cell that pushed the
// copy that got processed. Neighbors are pushed in resolver order (up, down,
// left, right), so the last one pushed is explored first. The resulting Path
// is valid but not necessarily shortest.
//
// Complexity: O(V) time, O(V) memory (each cell pushes at most 4 entries).
func RunDFS(g *grid.Grid, source, target grid.Position, opts ...Option) (*Result, error) {
	w, err := prepare(g, source, target, opts)
	if err != nil {
		return nil, err
	}
	if source == target {
		return w.res, nil
	}

	stack := arraystack.New()
	stack.Push(frame{pos: source, root: true})

	for !stack.Empty() {
		if err = w.cancelled(); err != nil {
			return w.res, err
		}
		v, _ := stack.Pop()
		f := v.(frame)
		if w.work.Visited(f.pos) {
			continue
		}
		w.work.MarkVisited(f.pos)
		if f.root {
			w.work.SetDistance(f.pos, 0)
		} else {
			w.work.SetPredecessor(f.pos, f.parent)
			w.work.SetDistance(f.pos, w.work.Distance(f.parent)+1)
		}
		if err = w.visit(f.pos); err != nil {
			return w.res, err
		}
		if f.pos == target {
			return w.finish(true), nil
		}

		for _, n := range w.neighbors(f.pos) {
			if !w.work.Visited(n) {
				stack.Push(frame{pos: n, parent: f.pos})
			}
		}
	}

	return w.finish(false), nil
}
