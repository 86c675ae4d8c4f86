package trace

// Player replays a Trace one step at a time. It performs no timing: callers
// decide when to call Step.
type Player struct {
	trace *Trace
	pos   int
	state State
}

// NewPlayer returns an Idle player positioned at the first step of t.
// A nil trace is treated as empty.
func NewPlayer(t *Trace) *Player {
	if t == nil {
		t = &Trace{}
	}

	return &Player{trace: t}
}

// Trace returns the trace being replayed.
func (p *Player) Trace() *Trace { return p.trace }

// Cursor returns the current position and state.
func (p *Player) Cursor() Cursor {
	return Cursor{Position: p.pos, State: p.state}
}

// Remaining returns how many steps are left to emit.
func (p *Player) Remaining() int { return p.trace.Len() - p.pos }

// Step emits the transition at the cursor and advances by one.
// Idle becomes Playing; emitting the last step makes the player Complete.
// Returns ErrPaused while paused and ErrComplete once nothing is left; in
// both cases the cursor does not move.
func (p *Player) Step() (CellState, error) {
	switch p.state {
	case Paused:
		return CellState{}, ErrPaused
	case Complete:
		return CellState{}, ErrComplete
	}
	st, ok := p.trace.At(p.pos)
	if !ok {
		p.state = Complete
		return CellState{}, ErrComplete
	}
	cs := CellState{Index: p.pos, Kind: st.Kind, Pos: st.Pos, Visual: visualOf(st.Kind)}
	p.pos++
	if p.pos == p.trace.Len() {
		p.state = Complete
	} else {
		p.state = Playing
	}

	return cs, nil
}

// Play switches an Idle or Playing player to Playing. It is a no-op that
// returns ErrPaused while paused (use Resume) and ErrComplete at the end.
func (p *Player) Play() (Cursor, error) {
	switch p.state {
	case Paused:
		return p.Cursor(), ErrPaused
	case Complete:
		return p.Cursor(), ErrComplete
	}
	if p.pos >= p.trace.Len() {
		p.state = Complete
		return p.Cursor(), ErrComplete
	}
	p.state = Playing

	return p.Cursor(), nil
}

// Pause stops advancement. Complete players stay Complete.
func (p *Player) Pause() Cursor {
	if p.state != Complete {
		p.state = Paused
	}

	return p.Cursor()
}

// Resume returns a paused player to Playing. Other states are unchanged.
func (p *Player) Resume() Cursor {
	if p.state == Paused {
		p.state = Playing
		if p.pos >= p.trace.Len() {
			p.state = Complete
		}
	}

	return p.Cursor()
}

// Reset rewinds to the first step and returns to Idle. The trace is kept, so
// a replay needs no recomputation.
func (p *Player) Reset() Cursor {
	p.pos = 0
	p.state = Idle

	return p.Cursor()
}
