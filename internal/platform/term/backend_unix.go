//go:build unix

package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Fallback size when the output is not a terminal.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Unix is the Terminal backed by a pair of file descriptors, usually
// stdin and stdout.
type Unix struct {
	in      *os.File
	inFd    int
	outFd   int
	buf     *bufio.Writer
	out     *termenv.Output
	oldTerm *term.State
	pending []Key
	readBuf []byte
}

// NewUnix creates a terminal reading keys from in and writing to out.
func NewUnix(in, out *os.File) *Unix {
	buf := bufio.NewWriterSize(out, 64*1024)
	return &Unix{
		in:      in,
		inFd:    int(in.Fd()),
		outFd:   int(out.Fd()),
		buf:     buf,
		out:     termenv.NewOutput(buf),
		readBuf: make([]byte, 256),
	}
}

// Stdio returns the terminal for the process's stdin and stdout.
func Stdio() *Unix {
	return NewUnix(os.Stdin, os.Stdout)
}

func (u *Unix) EnableRaw() error {
	if u.oldTerm != nil {
		return nil
	}
	if !term.IsTerminal(u.inFd) {
		return errors.New("term: stdin is not a terminal")
	}
	old, err := term.MakeRaw(u.inFd)
	if err != nil {
		return fmt.Errorf("term: make raw: %w", err)
	}
	u.oldTerm = old
	return nil
}

func (u *Unix) DisableRaw() error {
	if u.oldTerm == nil {
		return nil
	}
	old := u.oldTerm
	u.oldTerm = nil
	if err := term.Restore(u.inFd, old); err != nil {
		return fmt.Errorf("term: restore: %w", err)
	}
	return nil
}

func (u *Unix) EnterAltScreen() error {
	u.out.AltScreen()
	return nil
}

func (u *Unix) LeaveAltScreen() error {
	u.out.ExitAltScreen()
	return nil
}

func (u *Unix) HideCursor() error {
	u.out.HideCursor()
	return nil
}

func (u *Unix) ShowCursor() error {
	u.out.ShowCursor()
	return nil
}

// MoveTo takes 0-based coordinates; the escape sequence is 1-based.
func (u *Unix) MoveTo(row, col int) error {
	u.out.MoveCursor(row+1, col+1)
	return nil
}

func (u *Unix) Write(p []byte) (int, error) {
	return u.buf.Write(p)
}

func (u *Unix) Flush() error {
	return u.buf.Flush()
}

func (u *Unix) Size() (int, int) {
	w, h, err := term.GetSize(u.outFd)
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

func (u *Unix) PollKey(timeout time.Duration) (Key, bool, error) {
	if k, ok := u.popPending(); ok {
		return k, true, nil
	}

	ms := int(timeout.Milliseconds())
	if timeout < 0 {
		ms = -1
	}

	fds := []unix.PollFd{{Fd: int32(u.inFd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, ms)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return Key{}, false, fmt.Errorf("term: poll: %w", err)
		}
		if n == 0 {
			return Key{}, false, nil
		}
		break
	}

	if err := u.fill(); err != nil {
		return Key{}, false, err
	}
	k, ok := u.popPending()
	return k, ok, nil
}

func (u *Unix) ReadKey() (Key, error) {
	for {
		k, ok, err := u.PollKey(-1)
		if err != nil {
			return Key{}, err
		}
		if ok {
			return k, nil
		}
	}
}

// fill reads whatever input is available and queues the decoded keys.
func (u *Unix) fill() error {
	for {
		n, err := unix.Read(u.inFd, u.readBuf)
		if err != nil {
			if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
				continue
			}
			return fmt.Errorf("term: read: %w", err)
		}
		if n == 0 {
			return io.EOF
		}
		u.pending = append(u.pending, DecodeKeys(u.readBuf[:n])...)
		return nil
	}
}

func (u *Unix) popPending() (Key, bool) {
	if len(u.pending) == 0 {
		return Key{}, false
	}
	k := u.pending[0]
	u.pending = u.pending[1:]
	return k, true
}

var _ Terminal = (*Unix)(nil)
