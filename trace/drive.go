package trace

import (
	"context"
	"errors"
	"time"
)

// Drive plays p on the caller's cadence: one Step per value received from
// tick, each passed to emit. It returns nil when the player completes or is
// paused (for example by emit calling p.Pause), ctx.Err() on cancellation,
// and emit's error if it fails. The cadence source is the caller's, so Drive
// itself never sleeps or starts timers.
func Drive(ctx context.Context, p *Player, tick <-chan time.Time, emit func(CellState) error) error {
	if _, err := p.Play(); err != nil {
		if errors.Is(err, ErrComplete) || errors.Is(err, ErrPaused) {
			return nil
		}
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
		cs, err := p.Step()
		switch {
		case errors.Is(err, ErrComplete), errors.Is(err, ErrPaused):
			return nil
		case err != nil:
			return err
		}
		if err = emit(cs); err != nil {
			return err
		}
		if s := p.Cursor().State; s == Complete || s == Paused {
			return nil
		}
	}
}
