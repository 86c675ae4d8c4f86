package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/trace"
)

// Session couples one canonical grid with at most one active trace.
type Session struct {
	grid   *grid.Grid
	player *trace.Player
	log    *slog.Logger
}

// New wraps g, or a default 20×20 grid when g is nil.
func New(g *grid.Grid, opts ...Option) *Session {
	if g == nil {
		g = grid.NewDefault()
	}
	s := &Session{grid: g, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Grid returns the canonical grid. Edit it through the Session so the run
// flag is honored.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Trace returns the current trace, or nil.
func (s *Session) Trace() *trace.Trace {
	if s.player == nil {
		return nil
	}

	return s.player.Trace()
}

// Running reports whether a run is in progress.
func (s *Session) Running() bool {
	return s.player != nil && s.player.Cursor().State != trace.Complete
}

// settle discards a finished trace so edits and new runs may proceed.
func (s *Session) settle() {
	if s.player != nil && !s.Running() {
		s.discard()
	}
}

// discard drops the trace and unlocks the grid.
func (s *Session) discard() {
	s.player = nil
	s.grid.Unlock()
}

// edit applies fn to the grid after discarding a finished trace.
func (s *Session) edit(op string, p grid.Position, fn func(grid.Position) error) error {
	s.settle()
	if err := fn(p); err != nil {
		s.log.Debug("Grid edit rejected.", "op", op, "pos", p.String(), "error", err)
		return err
	}
	s.log.Debug("Grid edited.", "op", op, "pos", p.String())

	return nil
}

// SetObstacle toggles an obstacle at p.
func (s *Session) SetObstacle(p grid.Position) error {
	return s.edit("set_obstacle", p, s.grid.SetObstacle)
}

// PlaceObstacle places an obstacle at p without toggling.
func (s *Session) PlaceObstacle(p grid.Position) error {
	return s.edit("place_obstacle", p, s.grid.PlaceObstacle)
}

// Erase removes an obstacle at p.
func (s *Session) Erase(p grid.Position) error {
	return s.edit("erase", p, s.grid.Erase)
}

// MoveSource relocates the Source to p.
func (s *Session) MoveSource(p grid.Position) error {
	return s.edit("move_source", p, s.grid.MoveSource)
}

// MoveTarget relocates the Target to p.
func (s *Session) MoveTarget(p grid.Position) error {
	return s.edit("move_target", p, s.grid.MoveTarget)
}

// ClearObstacles removes every obstacle.
func (s *Session) ClearObstacles() error {
	s.settle()
	return s.grid.ClearObstacles()
}

// Clear removes every obstacle and resets metadata.
func (s *Session) Clear() error {
	s.settle()
	return s.grid.Clear()
}

// Run computes alg to completion on a working copy of the grid, builds the
// trace, locks the grid and returns the trace with an Idle cursor.
// Returns ErrAlreadyRunning while a previous trace is still active.
func (s *Session) Run(ctx context.Context, alg search.Algorithm) (*trace.Trace, error) {
	if s.Running() {
		return nil, ErrAlreadyRunning
	}
	s.settle()
	s.grid.ResetMetadata()

	res, err := search.Run(s.grid, alg, search.WithContext(ctx))
	if err != nil {
		s.log.Error("Run failed.", "algorithm", alg.String(), "error", err)
		return nil, err
	}
	tr := trace.Build(alg, res, s.grid.Source(), s.grid.Target())
	s.player = trace.NewPlayer(tr)
	s.grid.Lock()
	s.log.Info("Run computed.",
		"algorithm", alg.String(),
		"visited", len(res.Visited),
		"path", len(res.Path),
		"found", res.Found,
		"steps", tr.Len(),
	)
	if tr.Len() == 0 {
		// nothing to animate: the run is complete immediately
		_, _ = s.player.Play()
	}

	return tr, nil
}

// Step advances playback by one transition.
func (s *Session) Step() (trace.CellState, error) {
	if s.player == nil {
		return trace.CellState{}, ErrNoTrace
	}
	cs, err := s.player.Step()
	if err == nil && s.player.Cursor().State == trace.Complete {
		s.log.Info("Playback complete.", "steps", s.player.Trace().Len())
	}

	return cs, err
}

// Drive plays the current trace on the caller's tick channel until it
// completes, is paused from emit, or ctx ends. See trace.Drive.
func (s *Session) Drive(ctx context.Context, tick <-chan time.Time, emit func(trace.CellState) error) error {
	if s.player == nil {
		return ErrNoTrace
	}
	err := trace.Drive(ctx, s.player, tick, emit)
	cur := s.player.Cursor()
	if err != nil {
		s.log.Warn("Playback interrupted.", "position", cur.Position, "error", err)
		return err
	}
	s.log.Info("Playback stopped.", "position", cur.Position, "state", cur.State.String())

	return nil
}

// Play marks playback as Playing; the caller schedules Step.
func (s *Session) Play() (trace.Cursor, error) {
	if s.player == nil {
		return trace.Cursor{}, ErrNoTrace
	}

	return s.player.Play()
}

// Pause stops advancement until Resume.
func (s *Session) Pause() (trace.Cursor, error) {
	if s.player == nil {
		return trace.Cursor{}, ErrNoTrace
	}

	return s.player.Pause(), nil
}

// Resume continues a paused playback.
func (s *Session) Resume() (trace.Cursor, error) {
	if s.player == nil {
		return trace.Cursor{}, ErrNoTrace
	}

	return s.player.Resume(), nil
}

// Reset rewinds the cursor to the first step without recomputing. A reset
// trace is active again, so the grid stays locked.
func (s *Session) Reset() (trace.Cursor, error) {
	if s.player == nil {
		return trace.Cursor{}, ErrNoTrace
	}
	s.grid.Lock()

	return s.player.Reset(), nil
}

// Cursor returns the playback cursor, or ErrNoTrace.
func (s *Session) Cursor() (trace.Cursor, error) {
	if s.player == nil {
		return trace.Cursor{}, ErrNoTrace
	}

	return s.player.Cursor(), nil
}

// Frame projects the steps played so far onto the grid.
func (s *Session) Frame() [][]trace.Visual {
	if s.player == nil {
		return trace.Frame(s.grid, nil, 0)
	}

	return trace.Frame(s.grid, s.player.Trace(), s.player.Cursor().Position)
}

// Stop cancels the current run: the trace is discarded, the cursor reset and
// the grid unlocked. Stopping without a run is a no-op.
func (s *Session) Stop() {
	if s.player == nil {
		return
	}
	s.log.Info("Run stopped.", "position", s.player.Cursor().Position, "steps", s.player.Trace().Len())
	s.player.Reset()
	s.discard()
}
