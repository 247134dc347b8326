package life

import (
	"github.com/vovakirdan/tui-minigames/internal/core"
)

// Classify maps a cell to the background color that previews its fate.
//
//	alive, 0-1 neighbors  red            dies of isolation
//	alive, 2              green          survives
//	alive, 3              bright green   stable
//	alive, 4+             magenta        dies of overcrowding
//	dead, 3               cyan           about to be born
//	dead, 1-2             bright black
//	dead, 0 or 4+         black
func Classify(alive bool, neighbors int) core.Color {
	if alive {
		switch {
		case neighbors <= 1:
			return core.ColorRed
		case neighbors == 2:
			return core.ColorGreen
		case neighbors == 3:
			return core.ColorBrightGreen
		default:
			return core.ColorMagenta
		}
	}

	switch neighbors {
	case 3:
		return core.ColorCyan
	case 1, 2:
		return core.ColorBrightBlack
	default:
		return core.ColorBlack
	}
}

// Draw paints every cell of g as a colored space into dst.
func Draw(g *Grid, dst *core.Screen) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			dst.SetCell(x, y, core.Cell{
				Rune: ' ',
				Bg:   Classify(g.Alive(x, y), g.Neighbors(x, y)),
			})
		}
	}
}
