package trace_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/trace"
)

func TestPlayer_StepThrough(t *testing.T) {
	_, tr := run(t, "S..T", search.BFS)
	p := trace.NewPlayer(tr)
	require.Equal(t, trace.Cursor{Position: 0, State: trace.Idle}, p.Cursor())
	require.Equal(t, 4, tr.Len()) // explored (0,1) (0,2), path (0,1) (0,2)

	var got []trace.CellState
	for {
		cs, err := p.Step()
		if errors.Is(err, trace.ErrComplete) {
			break
		}
		require.NoError(t, err)
		got = append(got, cs)
		if cs.Index < tr.Len()-1 {
			assert.Equal(t, trace.Playing, p.Cursor().State)
		}
	}
	require.Len(t, got, 4)
	for i, cs := range got {
		assert.Equal(t, i, cs.Index)
	}
	assert.Equal(t, trace.VisualExplored, got[0].Visual)
	assert.Equal(t, trace.VisualPath, got[3].Visual)
	assert.Equal(t, trace.PathStep, got[3].Kind)
	assert.Equal(t, trace.Cursor{Position: 4, State: trace.Complete}, p.Cursor())
	assert.Equal(t, 0, p.Remaining())

	// Stepping at the end keeps signalling Complete.
	_, err := p.Step()
	assert.ErrorIs(t, err, trace.ErrComplete)
	_, err = p.Play()
	assert.ErrorIs(t, err, trace.ErrComplete)
}

func TestPlayer_PauseResume(t *testing.T) {
	_, tr := run(t, "S...T", search.Dijkstra)
	p := trace.NewPlayer(tr)

	cur, err := p.Play()
	require.NoError(t, err)
	assert.Equal(t, trace.Playing, cur.State)
	_, err = p.Step()
	require.NoError(t, err)

	cur = p.Pause()
	assert.Equal(t, trace.Cursor{Position: 1, State: trace.Paused}, cur)

	_, err = p.Step()
	assert.ErrorIs(t, err, trace.ErrPaused)
	_, err = p.Play()
	assert.ErrorIs(t, err, trace.ErrPaused)
	assert.Equal(t, 1, p.Cursor().Position, "no-ops while paused")

	cur = p.Resume()
	assert.Equal(t, trace.Playing, cur.State)
	cs, err := p.Step()
	require.NoError(t, err)
	assert.Equal(t, 1, cs.Index)
}

func TestPlayer_ResetReplays(t *testing.T) {
	_, tr := run(t, "S..\n...\n..T", search.DFS)
	p := trace.NewPlayer(tr)

	var first []trace.CellState
	for p.Remaining() > 0 {
		cs, err := p.Step()
		require.NoError(t, err)
		first = append(first, cs)
	}
	require.Equal(t, trace.Complete, p.Cursor().State)

	assert.Equal(t, trace.Cursor{Position: 0, State: trace.Idle}, p.Reset())
	var second []trace.CellState
	for p.Remaining() > 0 {
		cs, err := p.Step()
		require.NoError(t, err)
		second = append(second, cs)
	}
	assert.Equal(t, first, second)
	assert.Same(t, tr, p.Trace())
}

func TestPlayer_EmptyTrace(t *testing.T) {
	p := trace.NewPlayer(nil)
	_, err := p.Play()
	assert.ErrorIs(t, err, trace.ErrComplete)
	assert.Equal(t, trace.Complete, p.Cursor().State)

	p = trace.NewPlayer(trace.Build(search.BFS, nil, pos(0, 0), pos(0, 1)))
	_, err = p.Step()
	assert.ErrorIs(t, err, trace.ErrComplete)
	assert.Equal(t, trace.Complete, p.Pause().State, "complete stays complete")
}

func TestDrive_RunsToCompletion(t *testing.T) {
	_, tr := run(t, "S...\n....\n...T", search.BFS)
	p := trace.NewPlayer(tr)

	tick := make(chan time.Time, tr.Len())
	for i := 0; i < tr.Len(); i++ {
		tick <- time.Time{}
	}
	var n int
	err := trace.Drive(context.Background(), p, tick, func(cs trace.CellState) error {
		assert.Equal(t, n, cs.Index)
		n++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, tr.Len(), n)
	assert.Equal(t, trace.Complete, p.Cursor().State)
}

func TestDrive_PauseFromEmit(t *testing.T) {
	_, tr := run(t, "S...\n....\n...T", search.BFS)
	p := trace.NewPlayer(tr)

	tick := make(chan time.Time, tr.Len())
	for i := 0; i < tr.Len(); i++ {
		tick <- time.Time{}
	}
	err := trace.Drive(context.Background(), p, tick, func(cs trace.CellState) error {
		if cs.Index == 2 {
			p.Pause()
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, trace.Cursor{Position: 3, State: trace.Paused}, p.Cursor())

	// Driving a paused player is a no-op until Resume.
	require.NoError(t, trace.Drive(context.Background(), p, tick, func(trace.CellState) error { return nil }))
	assert.Equal(t, 3, p.Cursor().Position)
}

func TestDrive_Cancelled(t *testing.T) {
	_, tr := run(t, "S...T", search.BFS)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := trace.Drive(ctx, trace.NewPlayer(tr), make(chan time.Time), func(trace.CellState) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDrive_EmitError(t *testing.T) {
	_, tr := run(t, "S...T", search.BFS)
	boom := errors.New("render failed")
	tick := make(chan time.Time, 1)
	tick <- time.Time{}
	err := trace.Drive(context.Background(), trace.NewPlayer(tr), tick, func(trace.CellState) error { return boom })
	assert.ErrorIs(t, err, boom)
}
