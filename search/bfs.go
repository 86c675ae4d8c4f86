package search

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/gridpath/grid"
)

// RunBFS performs breadth-first traversal from source toward target.
//
// Cells are marked visited when enqueued, which keeps every cell in the queue
// at most once, and are appended to Visited when dequeued. The run stops as
// soon as target is dequeued; because all cells at depth k leave the queue
// before any at depth k+1, the reconstructed Path is shortest in edge count.
//
// Complexity: O(V) time and memory.
func RunBFS(g *grid.Grid, source, target grid.Position, opts ...Option) (*Result, error) {
	w, err := prepare(g, source, target, opts)
	if err != nil {
		return nil, err
	}
	if source == target {
		return w.res, nil
	}

	queue := linkedlistqueue.New()
	w.work.MarkVisited(source)
	w.work.SetDistance(source, 0)
	queue.Enqueue(source)

	for !queue.Empty() {
		if err = w.cancelled(); err != nil {
			return w.res, err
		}
		v, _ := queue.Dequeue()
		current := v.(grid.Position)
		if err = w.visit(current); err != nil {
			return w.res, err
		}
		if current == target {
			return w.finish(true), nil
		}

		depth := w.work.Distance(current) + 1
		for _, n := range w.neighbors(current) {
			if w.work.Visited(n) {
				continue
			}
			w.work.MarkVisited(n)
			w.work.Relax(n, current, depth)
			queue.Enqueue(n)
		}
	}

	return w.finish(false), nil
}
