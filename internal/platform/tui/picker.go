package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-minigames/internal/platform/term"
	"github.com/vovakirdan/tui-minigames/internal/registry"
)

// Choice is the outcome of one menu interaction.
type Choice struct {
	Index int // entry index, valid when Quit is false
	Quit  bool
}

// Picker shows the menu and waits for a selection. A cancelled ctx ends
// the wait with a Quit choice.
type Picker interface {
	Pick(ctx context.Context, entries []registry.Descriptor) (Choice, error)
}

// pickPoll bounds each key wait of KeyPicker so cancellation is noticed.
const pickPoll = 100 * time.Millisecond

// TeaPicker runs the menu as a Bubble Tea program on the alternate screen.
// The program owns stdin only while the menu is visible.
type TeaPicker struct {
	Options []tea.ProgramOption
}

// Pick implements Picker.
func (p TeaPicker) Pick(ctx context.Context, entries []registry.Descriptor) (Choice, error) {
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, p.Options...)
	program := tea.NewProgram(NewMenuModel(entries), opts...)

	finalModel, err := program.Run()
	if ctx.Err() != nil {
		return Choice{Quit: true}, nil
	}
	if err != nil {
		return Choice{}, fmt.Errorf("tui: menu: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return Choice{Quit: true}, nil
	}
	return choiceOf(m), nil
}

// KeyPicker runs the same menu model directly on a Terminal, without a
// Bubble Tea program. Used for --plain and when stdin is not driven by
// Bubble Tea. Keys are polled with a bounded timeout between ctx checks.
type KeyPicker struct {
	Term term.Terminal
}

// Pick implements Picker.
func (p KeyPicker) Pick(ctx context.Context, entries []registry.Descriptor) (choice Choice, err error) {
	if err := p.Term.EnableRaw(); err != nil {
		return Choice{}, fmt.Errorf("%w: enable raw: %w", term.ErrSetup, err)
	}
	defer func() {
		if rawErr := p.Term.DisableRaw(); rawErr != nil {
			err = errors.Join(err, fmt.Errorf("%w: disable raw: %w", term.ErrSetup, rawErr))
		}
	}()

	m := NewMenuModel(entries)
	if err := p.draw(m); err != nil {
		return Choice{}, err
	}
	for !m.Done() {
		if ctx.Err() != nil {
			return Choice{Quit: true}, nil
		}

		k, ok, err := p.Term.PollKey(pickPoll)
		if err != nil {
			return Choice{}, fmt.Errorf("tui: read key: %w", err)
		}
		if !ok {
			continue
		}
		msg, ok := keyMsg(k)
		if !ok {
			continue
		}
		next, _ := m.Update(msg)
		m = next.(MenuModel)

		if !m.Done() {
			if err := p.draw(m); err != nil {
				return Choice{}, err
			}
		}
	}

	return choiceOf(m), nil
}

// draw clears the screen and writes the menu. Raw mode needs explicit
// carriage returns.
func (p KeyPicker) draw(m MenuModel) error {
	if _, err := fmt.Fprintf(p.Term, termenv.CSI+termenv.EraseDisplaySeq, 2); err != nil {
		return fmt.Errorf("tui: clear: %w", err)
	}
	if err := p.Term.MoveTo(0, 0); err != nil {
		return fmt.Errorf("tui: move cursor: %w", err)
	}
	view := strings.ReplaceAll(m.View(), "\n", lineEnd)
	if _, err := p.Term.Write([]byte(view)); err != nil {
		return fmt.Errorf("tui: write menu: %w", err)
	}
	if err := p.Term.Flush(); err != nil {
		return fmt.Errorf("tui: flush: %w", err)
	}
	return nil
}

func choiceOf(m MenuModel) Choice {
	if m.IsQuitting() || m.Selected() < 0 {
		return Choice{Quit: true}
	}
	return Choice{Index: m.Selected()}
}

// keyMsg converts a decoded terminal key into the Bubble Tea message the
// menu model expects.
func keyMsg(k term.Key) (tea.KeyMsg, bool) {
	switch k.Type {
	case term.KeyRune:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{k.Rune}}, true
	case term.KeyCtrlC:
		return tea.KeyMsg{Type: tea.KeyCtrlC}, true
	case term.KeyEnter:
		return tea.KeyMsg{Type: tea.KeyEnter}, true
	case term.KeyEscape:
		return tea.KeyMsg{Type: tea.KeyEsc}, true
	case term.KeyBackspace:
		return tea.KeyMsg{Type: tea.KeyBackspace}, true
	case term.KeyTab:
		return tea.KeyMsg{Type: tea.KeyTab}, true
	case term.KeyUp:
		return tea.KeyMsg{Type: tea.KeyUp}, true
	case term.KeyDown:
		return tea.KeyMsg{Type: tea.KeyDown}, true
	case term.KeyLeft:
		return tea.KeyMsg{Type: tea.KeyLeft}, true
	case term.KeyRight:
		return tea.KeyMsg{Type: tea.KeyRight}, true
	}
	return tea.KeyMsg{}, false
}
