// Package term is the terminal capability the visualizers and the
// dispatcher drive: raw input mode, the alternate screen, cursor control,
// buffered output and key polling with a timeout.
package term

import (
	"errors"
	"io"
	"time"
)

// ErrSetup marks failures while switching the terminal into or out of
// visualizer mode. A terminal in that state is unusable, so callers treat
// these errors as fatal.
var ErrSetup = errors.New("term: terminal setup failed")

// Terminal is the set of terminal operations the program consumes.
// Output written through Write is buffered until Flush.
type Terminal interface {
	io.Writer

	// EnableRaw switches input to raw mode; DisableRaw restores it.
	EnableRaw() error
	DisableRaw() error

	// EnterAltScreen and LeaveAltScreen swap the alternate screen buffer.
	EnterAltScreen() error
	LeaveAltScreen() error

	HideCursor() error
	ShowCursor() error

	// MoveTo positions the cursor at a 0-based row and column.
	MoveTo(row, col int) error

	// Flush writes buffered output to the terminal in one write.
	Flush() error

	// Size returns the terminal size in character cells.
	Size() (width, height int)

	// PollKey waits at most timeout for a key. A zero timeout only checks
	// for input that is already pending. ok is false when no key arrived.
	PollKey(timeout time.Duration) (k Key, ok bool, err error)

	// ReadKey blocks until the next key.
	ReadKey() (Key, error)
}
