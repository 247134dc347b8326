// Package tui provides the Bubble Tea menu, the frame renderer and the
// dispatcher that hands the terminal to the selected visualizer.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-minigames/internal/registry"
)

const (
	menuTitle  = "Mini Games — Select a game to run:"
	menuPrompt = "Press a number key to run its game."
)

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	entries  []registry.Descriptor
	keys     KeyMap
	help     help.Model
	selected int // -1 until a digit picks an entry
	quitting bool
}

// NewMenuModel creates a menu listing entries in order.
func NewMenuModel(entries []registry.Descriptor) MenuModel {
	return MenuModel{
		entries:  entries,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		selected: -1,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey quits on q, selects on an in-range digit and ignores the rest.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Run):
		idx := int(msg.String()[0]-'0') - 1
		if idx < len(m.entries) {
			m.selected = idx
			return m, tea.Quit // Exit menu to start game
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected >= 0 {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	mutedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString(titleStyle.Render(menuTitle))
	b.WriteString("\n")
	for i, e := range m.entries {
		fmt.Fprintf(&b, "  %d) %s", i+1, e.Title)
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("  q) Quit"))
	b.WriteString("\n\n")
	b.WriteString(menuPrompt)
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry index, or -1 if none was chosen.
func (m MenuModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Done reports whether the menu has a result.
func (m MenuModel) Done() bool {
	return m.quitting || m.selected >= 0
}
