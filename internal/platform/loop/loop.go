// Package loop runs the render/advance/poll/sleep cycle that every
// visualizer shares.
package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minigames/internal/platform/term"
)

// Sim is one animation driven by the loop.
type Sim interface {
	// Render writes the current state to t. The loop flushes afterwards.
	Render(t term.Terminal) error

	// Advance moves the simulation one tick forward.
	Advance()
}

// Pacing fixes the timing of one visualizer's frames.
type Pacing struct {
	// Poll is how long each frame waits for a key. Zero only checks pending input.
	Poll time.Duration

	// Drain keeps polling while keys are pending so a backlog never delays quitting.
	Drain bool

	// Budget is the frame pause.
	Budget time.Duration

	// Remainder sleeps only what is left of Budget after rendering and
	// advancing, keeping the cadence steady regardless of render cost.
	Remainder bool
}

// Clock abstracts time so tests can run frames instantly.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

type options struct {
	clock   Clock
	quitKey rune
	logger  *log.Logger
	name    string
}

// Option configures Run.
type Option func(*options)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithQuitKey sets the key that ends the loop (default 'q').
func WithQuitKey(r rune) Option {
	return func(o *options) { o.quitKey = r }
}

// WithLogger reports loop start and stop at debug level.
func WithLogger(l *log.Logger, name string) Option {
	return func(o *options) {
		o.logger = l
		o.name = name
	}
}

// Run takes over t for sim and blocks until the quit key is pressed, ctx is
// cancelled or a terminal operation fails. The terminal is restored on
// every exit path, including panics inside sim.
func Run(ctx context.Context, t term.Terminal, sim Sim, p Pacing, opts ...Option) (err error) {
	o := options{clock: realClock{}, quitKey: 'q'}
	for _, opt := range opts {
		opt(&o)
	}

	s, err := term.Enter(t)
	if err != nil {
		return err
	}
	defer func() {
		if exitErr := s.Exit(); exitErr != nil {
			err = errors.Join(err, exitErr)
		}
	}()

	frames := 0
	if o.logger != nil {
		o.logger.Debug("visualizer started", "name", o.name, "poll", p.Poll, "budget", p.Budget)
		defer func() {
			o.logger.Debug("visualizer stopped", "name", o.name, "frames", frames, "err", err)
		}()
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		start := o.clock.Now()

		if err := sim.Render(t); err != nil {
			return fmt.Errorf("loop: render: %w", err)
		}
		if err := t.Flush(); err != nil {
			return fmt.Errorf("loop: flush: %w", err)
		}
		frames++

		sim.Advance()

		quit, err := pollQuit(t, p, o.quitKey)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		pause := p.Budget
		if p.Remainder {
			pause -= o.clock.Now().Sub(start)
		}
		if pause > 0 {
			o.clock.Sleep(ctx, pause)
		}
	}
}

// pollQuit waits for keys according to p and reports whether the quit key
// was among them. Every other key is ignored.
func pollQuit(t term.Terminal, p Pacing, quitKey rune) (bool, error) {
	for {
		k, ok, err := t.PollKey(p.Poll)
		if err != nil {
			return false, fmt.Errorf("loop: poll: %w", err)
		}
		if !ok {
			return false, nil
		}
		if k.Is(quitKey) {
			return true, nil
		}
		if !p.Drain {
			return false, nil
		}
	}
}
