package tui

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-minigames/internal/core"
)

// lineEnd terminates each frame row. Raw mode disables output
// post-processing, so a bare newline would not return the carriage.
const lineEnd = "\r\n"

var (
	resetSeq     = termenv.CSI + termenv.ResetSeq + "m"
	defaultBgSeq = termenv.CSI + "49m"
)

// bgSequences maps core.Color to its SGR background sequence.
var bgSequences = func() map[core.Color]string {
	m := make(map[core.Color]string, int(core.ColorBrightWhite)+1)
	m[core.ColorDefault] = defaultBgSeq
	for c := core.ColorBlack; c <= core.ColorBrightWhite; c++ {
		m[c] = termenv.CSI + termenv.ANSIColor(c.ANSI()).Sequence(true) + "m"
	}
	return m
}()

// BackgroundSeq returns the escape sequence selecting c as background.
func BackgroundSeq(c core.Color) string {
	if seq, ok := bgSequences[c]; ok {
		return seq
	}
	return defaultBgSeq
}

// RenderScreen converts a Screen buffer into one frame string: every row is
// terminated by CRLF and the frame ends with an attribute reset.
// Adjacent cells with the same background share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height()*len(lineEnd) + len(resetSeq))

	for y := range s.Height() {
		x := 0
		for x < s.Width() {
			bg := s.GetCell(x, y).Bg
			sb.WriteString(BackgroundSeq(bg))

			// Collect consecutive cells with the same background
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Bg != bg {
					break
				}
				sb.WriteRune(cell.Rune)
				x++
			}
		}
		sb.WriteString(lineEnd)
	}
	sb.WriteString(resetSeq)
	return sb.String()
}
