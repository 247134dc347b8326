// Package bouncingball animates a point moving diagonally and reflecting off
// the terminal edges.
package bouncingball

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minigames/internal/config"
	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/platform/loop"
	"github.com/vovakirdan/tui-minigames/internal/platform/term"
	"github.com/vovakirdan/tui-minigames/internal/registry"
)

const (
	ID    = "bouncingball"
	Title = "Bouncing Ball"
)

// Ball is a point with an integer velocity inside a W x H field.
type Ball struct {
	Pos  core.Point
	Vel  core.Point
	W, H int
}

// Step advances the ball by its velocity. When an axis reaches 0 or its
// maximum the velocity on that axis is inverted. The position is clamped so
// it never leaves the field, even when the field is one cell wide.
func (b *Ball) Step() {
	b.Pos = b.Pos.Add(b.Vel)

	if b.Pos.X <= 0 || b.Pos.X >= b.W-1 {
		b.Vel.X = -b.Vel.X
	}
	if b.Pos.Y <= 0 || b.Pos.Y >= b.H-1 {
		b.Vel.Y = -b.Vel.Y
	}

	b.Pos.X = core.Clamp(b.Pos.X, 0, core.Max(b.W-1, 0))
	b.Pos.Y = core.Clamp(b.Pos.Y, 0, core.Max(b.H-1, 0))
}

// Game is the Bouncing Ball visualizer.
type Game struct {
	rt     core.RuntimeConfig
	cfg    config.PointConfig
	logger *log.Logger

	ball Ball
}

// New creates a Bouncing Ball visualizer. logger may be nil.
func New(rt core.RuntimeConfig, cfg config.PointConfig, logger *log.Logger) *Game {
	return &Game{rt: rt, cfg: cfg, logger: logger}
}

// Descriptor returns the registry entry for the visualizer.
func Descriptor(rt core.RuntimeConfig, cfg config.PointConfig, logger *log.Logger) registry.Descriptor {
	return registry.Descriptor{
		ID:    ID,
		Title: Title,
		New: func() registry.Visualizer {
			return New(rt, cfg, logger)
		},
	}
}

func (g *Game) ID() string    { return ID }
func (g *Game) Title() string { return Title }

// Reset places the ball at the centre of a w x h field moving down-right.
func (g *Game) Reset(w, h int) {
	g.ball = Ball{
		Pos: core.Center(w, h),
		Vel: core.Point{X: 1, Y: 1},
		W:   w,
		H:   h,
	}
}

// Ball returns the current ball state.
func (g *Game) Ball() Ball { return g.ball }

// Pacing returns the poll timeout and fixed frame pause.
func (g *Game) Pacing() loop.Pacing {
	return loop.Pacing{
		Poll:   g.cfg.Poll,
		Budget: g.cfg.FrameBudget,
	}
}

// Run bounces the ball around the terminal until the quit key is pressed.
func (g *Game) Run(ctx context.Context, t term.Terminal) error {
	w, h := t.Size()
	g.Reset(w, core.Max(h-1, 1))

	return loop.Run(ctx, t, g, g.Pacing(),
		loop.WithQuitKey(g.rt.QuitKey),
		loop.WithLogger(g.logger, ID),
	)
}

// Render draws the glyph at the ball position. Previous positions are not erased.
func (g *Game) Render(t term.Terminal) error {
	if !g.ball.Pos.In(g.ball.W, g.ball.H) {
		return nil
	}
	if err := t.MoveTo(g.ball.Pos.Y, g.ball.Pos.X); err != nil {
		return err
	}
	_, err := t.Write([]byte(string(g.cfg.GlyphRune())))
	return err
}

// Advance moves the ball one tick.
func (g *Game) Advance() {
	g.ball.Step()
}
