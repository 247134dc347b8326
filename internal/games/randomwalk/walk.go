// Package randomwalk animates a point taking uniformly random unit steps
// on a wrapping playfield.
package randomwalk

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
	ID    = "randomwalk"
	Title = "Random Walk"
)

// Direction of a single step.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Walker is the walking point on a w x h field.
type Walker struct {
	Pos  core.Point
	W, H int
}

// Step moves the walker one cell in dir, wrapping to the opposite edge.
func (w *Walker) Step(dir Direction) {
	switch dir {
	case DirLeft:
		w.Pos.X--
	case DirRight:
		w.Pos.X++
	case DirUp:
		w.Pos.Y--
	case DirDown:
		w.Pos.Y++
	}
	w.Pos.X = core.Wrap(w.Pos.X, w.W)
	w.Pos.Y = core.Wrap(w.Pos.Y, w.H)
}

// Game is the Random Walk visualizer.
type Game struct {
	rt     core.RuntimeConfig
	cfg    config.PointConfig
	logger *log.Logger

	rng    core.RNG
	walker Walker
}

// New creates a Random Walk visualizer. logger may be nil.
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

// ID returns the visualizer identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return Title }

// Reset centres the walker on a w x h field.
func (g *Game) Reset(w, h int) {
	g.rng = core.NewRNG(g.rt.Seed)
	g.walker = Walker{Pos: core.Center(w, h), W: w, H: h}
}

// Walker returns the current walker state.
func (g *Game) Walker() Walker { return g.walker }

// Pacing returns the poll timeout and fixed frame pause.
func (g *Game) Pacing() loop.Pacing {
	return loop.Pacing{
		Poll:   g.cfg.Poll,
		Budget: g.cfg.FrameBudget,
	}
}

// Run walks across the terminal, minus its last row, until the quit key is pressed.
func (g *Game) Run(ctx context.Context, t term.Terminal) error {
	w, h := t.Size()
	g.Reset(w, core.Max(h-1, 1))

	return loop.Run(ctx, t, g, g.Pacing(),
		loop.WithQuitKey(g.rt.QuitKey),
		loop.WithLogger(g.logger, ID),
	)
}

// Render draws the glyph at the current position only. Earlier glyphs stay
// on screen and leave the walk's trail.
func (g *Game) Render(t term.Terminal) error {
	if !g.walker.Pos.In(g.walker.W, g.walker.H) {
		return nil
	}
	if err := t.MoveTo(g.walker.Pos.Y, g.walker.Pos.X); err != nil {
		return err
	}
	_, err := t.Write([]byte(string(g.cfg.GlyphRune())))
	return err
}

// Advance takes one random step.
func (g *Game) Advance() {
	g.walker.Step(Direction(g.rng.IntN(4)))
}
