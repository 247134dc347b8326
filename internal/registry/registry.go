// Package registry holds the fixed, ordered list of visualizers the menu
// offers. The list is built once at program start and never changes.
package registry

import (
	"context"
	"fmt"

	"github.com/vovakirdan/tui-minigames/internal/platform/term"
)

// Visualizer is the interface every mini-game implements.
// A visualizer owns the terminal exclusively while Run is active.
type Visualizer interface {
	// ID returns a unique identifier (e.g., "life"). Used by the CLI.
	ID() string

	// Title returns a human-readable name for the menu (e.g., "Game of Life").
	Title() string

	// Run takes over the terminal and blocks until the user quits,
	// ctx is cancelled or a terminal operation fails. The terminal is back
	// in its normal state when Run returns.
	Run(ctx context.Context, t term.Terminal) error
}

// Factory creates a fresh visualizer instance.
type Factory func() Visualizer

// Descriptor names a visualizer and knows how to build it.
// Listing descriptors never constructs a visualizer.
type Descriptor struct {
	ID    string
	Title string
	New   Factory
}

// Registry is an ordered, immutable set of descriptors.
type Registry struct {
	entries []Descriptor
	index   map[string]int
}

// New builds a registry from descriptors in menu order.
// Panics on an empty or duplicate ID or a nil factory, since the list is
// static and such a mistake is a programming error.
func New(descs ...Descriptor) *Registry {
	r := &Registry{
		entries: make([]Descriptor, 0, len(descs)),
		index:   make(map[string]int, len(descs)),
	}
	for _, d := range descs {
		if d.ID == "" {
			panic("registry: descriptor with empty ID")
		}
		if d.New == nil {
			panic(fmt.Sprintf("registry: visualizer %q has no factory", d.ID))
		}
		if _, exists := r.index[d.ID]; exists {
			panic(fmt.Sprintf("registry: visualizer %q already registered", d.ID))
		}
		r.index[d.ID] = len(r.entries)
		r.entries = append(r.entries, d)
	}
	return r
}

// List returns the descriptors in registration order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registered visualizers.
func (r *Registry) Len() int {
	return len(r.entries)
}

// At returns the descriptor at a 0-based menu position.
func (r *Registry) At(i int) (Descriptor, bool) {
	if i < 0 || i >= len(r.entries) {
		return Descriptor{}, false
	}
	return r.entries[i], true
}

// Lookup returns the descriptor with the given ID.
func (r *Registry) Lookup(id string) (Descriptor, bool) {
	i, ok := r.index[id]
	if !ok {
		return Descriptor{}, false
	}
	return r.entries[i], true
}

// Create instantiates a new visualizer by its ID.
// Returns an error if the ID is not registered.
func (r *Registry) Create(id string) (Visualizer, error) {
	d, ok := r.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("registry: unknown visualizer %q", id)
	}
	return d.New(), nil
}

// Exists checks if a visualizer with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	_, ok := r.index[id]
	return ok
}
