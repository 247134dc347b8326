package term

import (
	"errors"
	"fmt"
)

// Session is a terminal owned by one running visualizer: alternate screen
// active, cursor hidden, raw input. Exit restores all three.
type Session struct {
	t      Terminal
	alt    bool
	hidden bool
	raw    bool
	closed bool
}

// Enter switches t into visualizer mode. When a step fails the steps that
// already succeeded are rolled back and an error wrapping ErrSetup is returned.
func Enter(t Terminal) (*Session, error) {
	s := &Session{t: t}

	if err := t.EnterAltScreen(); err != nil {
		return nil, s.abort("enter alternate screen", err)
	}
	s.alt = true

	if err := t.HideCursor(); err != nil {
		return nil, s.abort("hide cursor", err)
	}
	s.hidden = true

	if err := t.Flush(); err != nil {
		return nil, s.abort("flush", err)
	}

	if err := t.EnableRaw(); err != nil {
		return nil, s.abort("enable raw mode", err)
	}
	s.raw = true

	return s, nil
}

func (s *Session) abort(step string, err error) error {
	setupErr := fmt.Errorf("%w: %s: %w", ErrSetup, step, err)
	if exitErr := s.Exit(); exitErr != nil {
		return errors.Join(setupErr, exitErr)
	}
	return setupErr
}

// Exit shows the cursor, leaves the alternate screen and disables raw mode.
// Every step is attempted even if an earlier one fails. Calling Exit again
// is a no-op.
func (s *Session) Exit() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.hidden {
		if err := s.t.ShowCursor(); err != nil {
			errs = append(errs, fmt.Errorf("show cursor: %w", err))
		}
	}
	if s.alt {
		if err := s.t.LeaveAltScreen(); err != nil {
			errs = append(errs, fmt.Errorf("leave alternate screen: %w", err))
		}
	}
	if s.hidden || s.alt {
		if err := s.t.Flush(); err != nil {
			errs = append(errs, fmt.Errorf("flush: %w", err))
		}
	}
	if s.raw {
		if err := s.t.DisableRaw(); err != nil {
			errs = append(errs, fmt.Errorf("disable raw mode: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrSetup, errors.Join(errs...))
	}
	return nil
}
