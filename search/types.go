// Package search defines algorithm selection, options, results and sentinel errors.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrEndpoint is returned when source or target is out of bounds or an Obstacle.
	ErrEndpoint = errors.New("search: invalid source or target")

	// ErrAlgorithm is returned for an unknown algorithm.
	ErrAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm selects a search engine.
type Algorithm int

const (
	// Dijkstra is uniform-cost search with linear-scan selection.
	Dijkstra Algorithm = iota
	// BFS is breadth-first traversal.
	BFS
	// DFS is depth-first traversal.
	DFS
)

// Algorithms lists every engine in declaration order.
var Algorithms = []Algorithm{Dijkstra, BFS, DFS}

// String returns the short lower-case name used by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name back to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if strings.EqualFold(strings.TrimSpace(name), a.String()) {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrAlgorithm, name)
}

// Result is the outcome of one run.
//   - Visited: cells in the order they were processed, Source first.
//   - Path:    Source→Target cells, empty when Target was not reached.
//   - Found:   whether Target was reached.
//   - Work:    the engine's private working copy after the run.
type Result struct {
	Visited []grid.Position
	Path    []grid.Position
	Found   bool
	Work    *grid.Grid
}

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds the parameters shared by every engine.
type Options struct {
	// Ctx allows cancellation; checked once per expanded cell.
	Ctx context.Context

	// OnVisit is called each time a cell is appended to Result.Visited.
	// Returning an error aborts the run.
	OnVisit func(p grid.Position, step int) error
}

// DefaultOptions returns background context and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(grid.Position, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a hook run for each visited cell.
func WithOnVisit(fn func(p grid.Position, step int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
