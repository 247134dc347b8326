package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-minigames/internal/core"
)

func TestBackgroundSeq(t *testing.T) {
	tests := []struct {
		color    core.Color
		expected string
	}{
		{core.ColorBlack, "\x1b[40m"},
		{core.ColorRed, "\x1b[41m"},
		{core.ColorGreen, "\x1b[42m"},
		{core.ColorMagenta, "\x1b[45m"},
		{core.ColorCyan, "\x1b[46m"},
		{core.ColorBrightBlack, "\x1b[100m"},
		{core.ColorBrightGreen, "\x1b[102m"},
		{core.ColorDefault, "\x1b[49m"},
		{core.Color(99), "\x1b[49m"},
	}

	for _, tc := range tests {
		if got := BackgroundSeq(tc.color); got != tc.expected {
			t.Errorf("BackgroundSeq(%s) = %q, expected %q", tc.color, got, tc.expected)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.SetCell(0, 0, core.Cell{Rune: ' ', Bg: core.ColorRed})
	s.SetCell(1, 0, core.Cell{Rune: ' ', Bg: core.ColorRed})
	s.SetCell(2, 0, core.Cell{Rune: ' ', Bg: core.ColorGreen})
	s.SetCell(0, 1, core.Cell{Rune: 'a', Bg: core.ColorBlack})
	s.SetCell(1, 1, core.Cell{Rune: 'b', Bg: core.ColorBlack})
	s.SetCell(2, 1, core.Cell{Rune: 'c', Bg: core.ColorBlack})

	got := RenderScreen(s)
	expected := "\x1b[41m  \x1b[42m \r\n" +
		"\x1b[40mabc\r\n" +
		"\x1b[0m"

	if got != expected {
		t.Errorf("RenderScreen() = %q, expected %q", got, expected)
	}
}

func TestRenderScreenRowCount(t *testing.T) {
	s := core.NewScreen(5, 4)
	got := RenderScreen(s)

	if n := strings.Count(got, "\r\n"); n != 4 {
		t.Errorf("frame has %d row terminators, expected 4", n)
	}
	if !strings.HasSuffix(got, "\x1b[0m") {
		t.Error("frame should end with an attribute reset")
	}
}
