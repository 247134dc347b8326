// Package termtest provides an in-memory Terminal for tests.
package termtest

import (
	"bytes"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-minigames/internal/platform/term"
)

// Fake records every terminal call and replays scripted keys.
// Keys are delivered one per PollKey/ReadKey call, after Idle empty polls.
type Fake struct {
	Width, Height int

	// Keys is the queue of keys still to deliver.
	Keys []term.Key

	// Idle is the number of polls that report no key before each key is
	// delivered.
	Idle int

	// Fail makes the named operation ("EnableRaw", "Flush", ...) return an error.
	Fail map[string]error

	Calls   []string
	Out     bytes.Buffer // everything flushed so far
	Frames  []string     // one entry per non-empty Flush
	Polls   []time.Duration
	Raw     bool
	Alt     bool
	Hidden  bool
	Cursor  [2]int
	pending bytes.Buffer
	idle    int
}

// New returns a fake terminal of the given size that will deliver keys.
func New(width, height int, keys ...term.Key) *Fake {
	return &Fake{Width: width, Height: height, Keys: keys}
}

// Runes converts a string into key presses.
func Runes(s string) []term.Key {
	keys := make([]term.Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, term.RuneKey(r))
	}
	return keys
}

func (f *Fake) call(name string) error {
	f.Calls = append(f.Calls, name)
	if err, ok := f.Fail[name]; ok {
		return err
	}
	return nil
}

func (f *Fake) EnableRaw() error {
	if err := f.call("EnableRaw"); err != nil {
		return err
	}
	f.Raw = true
	return nil
}

func (f *Fake) DisableRaw() error {
	if err := f.call("DisableRaw"); err != nil {
		return err
	}
	f.Raw = false
	return nil
}

func (f *Fake) EnterAltScreen() error {
	if err := f.call("EnterAltScreen"); err != nil {
		return err
	}
	f.Alt = true
	return nil
}

func (f *Fake) LeaveAltScreen() error {
	if err := f.call("LeaveAltScreen"); err != nil {
		return err
	}
	f.Alt = false
	return nil
}

func (f *Fake) HideCursor() error {
	if err := f.call("HideCursor"); err != nil {
		return err
	}
	f.Hidden = true
	return nil
}

func (f *Fake) ShowCursor() error {
	if err := f.call("ShowCursor"); err != nil {
		return err
	}
	f.Hidden = false
	return nil
}

func (f *Fake) MoveTo(row, col int) error {
	if err := f.call("MoveTo"); err != nil {
		return err
	}
	f.Cursor = [2]int{row, col}
	fmt.Fprintf(&f.pending, "<%d,%d>", row, col)
	return nil
}

func (f *Fake) Write(p []byte) (int, error) {
	if err, ok := f.Fail["Write"]; ok {
		return 0, err
	}
	return f.pending.Write(p)
}

func (f *Fake) Flush() error {
	if err := f.call("Flush"); err != nil {
		return err
	}
	if f.pending.Len() > 0 {
		f.Frames = append(f.Frames, f.pending.String())
		f.Out.Write(f.pending.Bytes())
		f.pending.Reset()
	}
	return nil
}

func (f *Fake) Size() (int, int) {
	return f.Width, f.Height
}

func (f *Fake) PollKey(timeout time.Duration) (term.Key, bool, error) {
	f.Polls = append(f.Polls, timeout)
	if err := f.call("PollKey"); err != nil {
		return term.Key{}, false, err
	}
	if len(f.Keys) == 0 {
		return term.Key{}, false, nil
	}
	if f.idle < f.Idle {
		f.idle++
		return term.Key{}, false, nil
	}
	f.idle = 0
	k := f.Keys[0]
	f.Keys = f.Keys[1:]
	return k, true, nil
}

// ReadKey returns the next scripted key, or an error when the script is
// exhausted so a test never blocks.
func (f *Fake) ReadKey() (term.Key, error) {
	if err := f.call("ReadKey"); err != nil {
		return term.Key{}, err
	}
	if len(f.Keys) == 0 {
		return term.Key{}, fmt.Errorf("termtest: no more keys")
	}
	k := f.Keys[0]
	f.Keys = f.Keys[1:]
	return k, nil
}

// Restored reports whether the terminal is back in its normal state.
func (f *Fake) Restored() bool {
	return !f.Raw && !f.Alt && !f.Hidden
}

var _ term.Terminal = (*Fake)(nil)
