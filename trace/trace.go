package trace

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Trace is the immutable, ordered record of one run's visual transitions.
type Trace struct {
	algorithm search.Algorithm
	source    grid.Position
	target    grid.Position
	steps     []Step
	explored  int
	found     bool
}

// Build concatenates res.Visited (Explored) then res.Path (PathStep), leaving
// out source and target in both parts.
// Complexity: O(|Visited| + |Path|).
func Build(alg search.Algorithm, res *search.Result, source, target grid.Position) *Trace {
	t := &Trace{algorithm: alg, source: source, target: target}
	if res == nil {
		return t
	}
	t.found = res.Found
	t.steps = make([]Step, 0, len(res.Visited)+len(res.Path))
	t.steps = appendTagged(t.steps, res.Visited, Explored, source, target)
	t.explored = len(t.steps)
	t.steps = appendTagged(t.steps, res.Path, PathStep, source, target)

	return t
}

// appendTagged appends every position except source and target as kind.
func appendTagged(dst []Step, ps []grid.Position, kind Kind, source, target grid.Position) []Step {
	for _, p := range ps {
		if p == source || p == target {
			continue
		}
		dst = append(dst, Step{Kind: kind, Pos: p})
	}

	return dst
}

// Algorithm returns the engine that produced the trace.
func (t *Trace) Algorithm() search.Algorithm { return t.algorithm }

// Source returns the run's source position.
func (t *Trace) Source() grid.Position { return t.source }

// Target returns the run's target position.
func (t *Trace) Target() grid.Position { return t.target }

// Len returns the number of steps.
func (t *Trace) Len() int { return len(t.steps) }

// Explored returns the number of Explored steps; they precede every PathStep.
func (t *Trace) Explored() int { return t.explored }

// PathLen returns the number of PathStep steps.
func (t *Trace) PathLen() int { return len(t.steps) - t.explored }

// Found reports whether the run reached its target.
func (t *Trace) Found() bool { return t.found }

// At returns the step at index i.
func (t *Trace) At(i int) (Step, bool) {
	if i < 0 || i >= len(t.steps) {
		return Step{}, false
	}

	return t.steps[i], true
}

// Steps returns a copy of all steps.
func (t *Trace) Steps() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)

	return out
}
