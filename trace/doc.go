// Package trace turns one search run into an immutable, replayable sequence of
// visual transitions and exposes a pull-based Player over it.
//
// What:
//
//   - Build concatenates the run's visited cells (tagged Explored) and path
//     cells (tagged PathStep), leaving out Source and Target.
//   - Player keeps a Cursor {Position, State} over the trace. Step advances by
//     one transition; Play, Pause, Resume and Reset only change the State.
//   - Frame projects a trace prefix onto the grid for renderers.
//   - Drive advances a Player on every tick of a caller-supplied channel.
//
// Why:
//
//   - The search runs to completion first; presentation timing belongs to
//     the caller, so the same trace can be stepped, paused, resumed, and
//     replayed without recomputation or stale timers firing after a reset.
//
// States:
//
//	Idle ──Play/Step──▶ Playing ──Pause──▶ Paused ──Resume──▶ Playing
//	  ▲                    │ last Step
//	  └──────Reset──── Complete
//
// A Player is not safe for concurrent use; drive it from one goroutine.
//
// Errors:
//
//   - ErrComplete: Step or Play at the end of the trace.
//   - ErrPaused:   Step or Play while paused (no-op until Resume).
package trace
