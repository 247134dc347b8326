// Package life implements Conway's Game of Life on a toroidal grid, colored
// by each cell's fate in the next generation.
package life

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minigames/internal/config"
	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/platform/loop"
	"github.com/vovakirdan/tui-minigames/internal/platform/term"
	"github.com/vovakirdan/tui-minigames/internal/platform/tui"
	"github.com/vovakirdan/tui-minigames/internal/registry"
)

const (
	ID    = "life"
	Title = "Game of Life"
)

// Game is the Game of Life visualizer.
type Game struct {
	rt     core.RuntimeConfig
	cfg    config.LifeConfig
	logger *log.Logger

	rng        core.RNG
	grid       *Grid
	screen     *core.Screen
	generation int
}

// New creates a Game of Life visualizer. logger may be nil.
func New(rt core.RuntimeConfig, cfg config.LifeConfig, logger *log.Logger) *Game {
	return &Game{rt: rt, cfg: cfg, logger: logger}
}

// Descriptor returns the registry entry for the visualizer.
func Descriptor(rt core.RuntimeConfig, cfg config.LifeConfig, logger *log.Logger) registry.Descriptor {
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

// Reset seeds a fresh random grid of the given size.
func (g *Game) Reset(w, h int) {
	g.rng = core.NewRNG(g.rt.Seed)
	g.grid = RandomGrid(w, h, g.cfg.Probability, g.rng)
	g.screen = core.NewScreen(w, h)
	g.generation = 0
}

// Grid returns the current generation.
func (g *Game) Grid() *Grid { return g.grid }

// Generation returns how many generations have been computed since Reset.
func (g *Game) Generation() int { return g.generation }

// Pacing fixes one generation per frame budget, sleeping only what the
// render and step left over. Pending keys are drained without waiting.
func (g *Game) Pacing() loop.Pacing {
	return loop.Pacing{
		Poll:      0,
		Drain:     true,
		Budget:    g.cfg.FrameBudget,
		Remainder: true,
	}
}

// Run seeds a grid that fills the terminal, minus its last row, and
// animates it until the quit key is pressed.
func (g *Game) Run(ctx context.Context, t term.Terminal) error {
	w, h := t.Size()
	g.Reset(w, core.Max(h-1, 1))

	if g.logger != nil {
		g.logger.Debug("life seeded", "width", w, "height", g.grid.Height(), "population", g.grid.Population())
	}

	return loop.Run(ctx, t, g, g.Pacing(),
		loop.WithQuitKey(g.rt.QuitKey),
		loop.WithLogger(g.logger, ID),
	)
}

// Render writes the whole board as one frame, starting at the top-left corner.
func (g *Game) Render(t term.Terminal) error {
	Draw(g.grid, g.screen)
	if err := t.MoveTo(0, 0); err != nil {
		return err
	}
	_, err := t.Write([]byte(tui.RenderScreen(g.screen)))
	return err
}

// Advance replaces the grid with the next generation.
func (g *Game) Advance() {
	g.grid = g.grid.Next()
	g.generation++
}
