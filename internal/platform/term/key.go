package term

import "unicode/utf8"

// KeyType classifies a decoded key event.
type KeyType int

const (
	KeyRune KeyType = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyCtrlC
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyUnknown
)

// Key is a single decoded key press.
type Key struct {
	Type KeyType
	Rune rune // set when Type is KeyRune
}

// RuneKey returns the key for a printable rune.
func RuneKey(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

// Is reports whether k is the printable rune r.
func (k Key) Is(r rune) bool {
	return k.Type == KeyRune && k.Rune == r
}

// String returns the key name in Bubble Tea's notation ("q", "enter", "ctrl+c").
func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		return string(k.Rune)
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	case KeyBackspace:
		return "backspace"
	case KeyTab:
		return "tab"
	case KeyCtrlC:
		return "ctrl+c"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	default:
		return "unknown"
	}
}

// DecodeKeys splits raw terminal input into key events.
// CSI sequences other than the arrow keys decode as KeyUnknown.
func DecodeKeys(b []byte) []Key {
	var keys []Key
	for len(b) > 0 {
		k, n := decodeKey(b)
		keys = append(keys, k)
		b = b[n:]
	}
	return keys
}

func decodeKey(b []byte) (Key, int) {
	switch c := b[0]; {
	case c == 0x03:
		return Key{Type: KeyCtrlC}, 1
	case c == '\r' || c == '\n':
		return Key{Type: KeyEnter}, 1
	case c == '\t':
		return Key{Type: KeyTab}, 1
	case c == 0x7f || c == 0x08:
		return Key{Type: KeyBackspace}, 1
	case c == 0x1b:
		return decodeEscape(b)
	case c < 0x20:
		return Key{Type: KeyUnknown}, 1
	}

	r, n := utf8.DecodeRune(b)
	if r == utf8.RuneError {
		return Key{Type: KeyUnknown}, n
	}
	return RuneKey(r), n
}

// decodeEscape handles input starting with ESC.
func decodeEscape(b []byte) (Key, int) {
	if len(b) == 1 {
		return Key{Type: KeyEscape}, 1
	}
	if b[1] != '[' && b[1] != 'O' {
		// Alt+key arrives as ESC followed by the key; report the escape only.
		return Key{Type: KeyEscape}, 1
	}

	// Skip parameter bytes until the final byte of the sequence.
	for i := 2; i < len(b); i++ {
		if b[i] < 0x40 || b[i] > 0x7e {
			continue
		}
		switch b[i] {
		case 'A':
			return Key{Type: KeyUp}, i + 1
		case 'B':
			return Key{Type: KeyDown}, i + 1
		case 'C':
			return Key{Type: KeyRight}, i + 1
		case 'D':
			return Key{Type: KeyLeft}, i + 1
		default:
			return Key{Type: KeyUnknown}, i + 1
		}
	}
	return Key{Type: KeyUnknown}, len(b)
}
