// Package trace defines step kinds, cursor states, visuals and sentinel errors.
package trace

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for playback.
var (
	// ErrComplete is returned when the cursor is already past the last step.
	ErrComplete = errors.New("trace: playback complete")

	// ErrPaused is returned by Step and Play while the player is paused.
	ErrPaused = errors.New("trace: playback paused")
)

// Kind tags a trace step.
type Kind int

const (
	// Explored marks a cell the algorithm processed.
	Explored Kind = iota
	// PathStep marks a cell on the reconstructed path.
	PathStep
)

// String returns "explored" or "path".
func (k Kind) String() string {
	switch k {
	case Explored:
		return "explored"
	case PathStep:
		return "path"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Step is one entry of a RunTrace.
type Step struct {
	Kind Kind
	Pos  grid.Position
}

// State is the playback state of a Cursor.
type State int

const (
	// Idle: nothing played yet, cursor at 0.
	Idle State = iota
	// Playing: playback in progress.
	Playing
	// Paused: Step and Play are no-ops until Resume.
	Paused
	// Complete: every step has been emitted.
	Complete
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Cursor is the playback position over a trace.
// Position counts the steps already emitted, so it doubles as the index of
// the next step.
type Cursor struct {
	Position int
	State    State
}

// Visual is what a renderer should paint for a cell.
type Visual int

const (
	VisualEmpty Visual = iota
	VisualObstacle
	VisualSource
	VisualTarget
	VisualExplored
	VisualPath
)

// Glyph returns a one-character rendering of the visual.
func (v Visual) Glyph() byte {
	switch v {
	case VisualObstacle:
		return '#'
	case VisualSource:
		return 'S'
	case VisualTarget:
		return 'T'
	case VisualExplored:
		return '+'
	case VisualPath:
		return '*'
	default:
		return '.'
	}
}

// visualOf maps a step kind to the visual it paints.
func visualOf(k Kind) Visual {
	if k == PathStep {
		return VisualPath
	}

	return VisualExplored
}

// CellState is the transition a single Step applies to the display.
type CellState struct {
	Index  int // index of the step in the trace
	Kind   Kind
	Pos    grid.Position
	Visual Visual
}

// Speed bounds, matching the classic visualizer slider.
const (
	MinSpeed = 1
	MaxSpeed = 100
)

// IntervalForSpeed converts a 1..100 speed setting into the delay a caller
// should wait between Step calls: (101 - speed) milliseconds. Out-of-range
// values are clamped.
func IntervalForSpeed(speed int) time.Duration {
	if speed < MinSpeed {
		speed = MinSpeed
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}

	return time.Duration(MaxSpeed+1-speed) * time.Millisecond
}
