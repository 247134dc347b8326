package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minigames/internal/platform/term"
	"github.com/vovakirdan/tui-minigames/internal/registry"
)

// Dispatcher alternates between the menu and the visualizer picked from it.
type Dispatcher struct {
	reg    *registry.Registry
	picker Picker
	term   term.Terminal
	logger *log.Logger
}

// NewDispatcher wires a registry, a menu and the terminal visualizers run on.
// logger may be nil.
func NewDispatcher(reg *registry.Registry, picker Picker, t term.Terminal, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dispatcher{reg: reg, picker: picker, term: t, logger: logger}
}

// Run shows the menu until the user quits or ctx is cancelled. Each
// selection constructs one fresh visualizer. A visualizer failing with
// term.ErrSetup leaves the terminal unusable and ends Run; any other
// failure is logged and the menu is shown again.
func (d *Dispatcher) Run(ctx context.Context) error {
	entries := d.reg.List()

	for ctx.Err() == nil {
		choice, err := d.picker.Pick(ctx, entries)
		if err != nil {
			return fmt.Errorf("tui: menu: %w", err)
		}
		if choice.Quit {
			return nil
		}

		desc, ok := d.reg.At(choice.Index)
		if !ok {
			d.logger.Warn("menu returned an invalid entry", "index", choice.Index)
			continue
		}

		if err := d.launch(ctx, desc.ID, desc.New()); err != nil {
			if errors.Is(err, term.ErrSetup) {
				return fmt.Errorf("tui: %s: %w", desc.ID, err)
			}
			d.logger.Error("visualizer failed", "id", desc.ID, "err", err)
		}
	}

	return nil
}

// RunOne runs the visualizer registered under id once and returns its error.
func (d *Dispatcher) RunOne(ctx context.Context, id string) error {
	v, err := d.reg.Create(id)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if err := d.launch(ctx, id, v); err != nil {
		return fmt.Errorf("tui: %s: %w", id, err)
	}
	return nil
}

func (d *Dispatcher) launch(ctx context.Context, id string, v registry.Visualizer) error {
	d.logger.Info("starting visualizer", "id", id)
	err := v.Run(ctx, d.term)
	d.logger.Info("visualizer returned", "id", id)
	return err
}
