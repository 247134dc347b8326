package term_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-minigames/internal/platform/term"
	"github.com/vovakirdan/tui-minigames/internal/platform/term/termtest"
)

func TestSessionEnterExit(t *testing.T) {
	f := termtest.New(10, 5)

	s, err := term.Enter(f)
	if err != nil {
		t.Fatalf("Enter() failed: %v", err)
	}
	if !f.Raw || !f.Alt || !f.Hidden {
		t.Errorf("after Enter raw=%v alt=%v hidden=%v, expected all true", f.Raw, f.Alt, f.Hidden)
	}

	if err := s.Exit(); err != nil {
		t.Fatalf("Exit() failed: %v", err)
	}
	if !f.Restored() {
		t.Error("terminal not restored after Exit")
	}

	expected := []string{
		"EnterAltScreen", "HideCursor", "Flush", "EnableRaw",
		"ShowCursor", "LeaveAltScreen", "Flush", "DisableRaw",
	}
	if !slices.Equal(f.Calls, expected) {
		t.Errorf("calls = %v, expected %v", f.Calls, expected)
	}
}

func TestSessionExitIdempotent(t *testing.T) {
	f := termtest.New(10, 5)
	s, err := term.Enter(f)
	if err != nil {
		t.Fatalf("Enter() failed: %v", err)
	}

	s.Exit()
	n := len(f.Calls)
	if err := s.Exit(); err != nil {
		t.Errorf("second Exit() returned %v", err)
	}
	if len(f.Calls) != n {
		t.Errorf("second Exit() made %d extra calls", len(f.Calls)-n)
	}
}

func TestSessionEnterRollsBack(t *testing.T) {
	boom := errors.New("boom")
	f := termtest.New(10, 5)
	f.Fail = map[string]error{"EnableRaw": boom}

	s, err := term.Enter(f)
	if s != nil {
		t.Error("Enter() should not return a session on failure")
	}
	if !errors.Is(err, term.ErrSetup) {
		t.Errorf("error %v should wrap ErrSetup", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("error %v should wrap the cause", err)
	}
	if !f.Restored() {
		t.Error("partial setup was not rolled back")
	}
	if slices.Contains(f.Calls, "DisableRaw") {
		t.Error("raw mode was never enabled and must not be disabled")
	}
}

func TestSessionExitAttemptsEveryStep(t *testing.T) {
	boom := errors.New("boom")
	f := termtest.New(10, 5)
	s, err := term.Enter(f)
	if err != nil {
		t.Fatalf("Enter() failed: %v", err)
	}

	f.Fail = map[string]error{"ShowCursor": boom}
	err = s.Exit()
	if !errors.Is(err, boom) || !errors.Is(err, term.ErrSetup) {
		t.Errorf("Exit() error = %v, expected ErrSetup wrapping boom", err)
	}
	if f.Alt || f.Raw {
		t.Error("alternate screen and raw mode must be restored even when showing the cursor fails")
	}
}
