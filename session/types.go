package session

import (
	"errors"
	"log/slog"
)

// Sentinel errors for run control.
var (
	// ErrAlreadyRunning is returned by Run while a prior trace is still active.
	ErrAlreadyRunning = errors.New("session: a run is already in progress")

	// ErrNoTrace is returned by playback calls before any Run.
	ErrNoTrace = errors.New("session: no trace to play")
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the structured logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}
