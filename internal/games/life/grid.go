package life

import (
	"strings"

	"github.com/vovakirdan/tui-minigames/internal/core"
)

// Grid is a fixed-size toroidal board of live and dead cells.
// Neighbor lookups wrap around both edges.
type Grid struct {
	w, h  int
	cells []bool // row-major: cells[y*w+x]
}

// NewGrid returns an all-dead grid. Non-positive dimensions yield an empty grid.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		return &Grid{}
	}
	return &Grid{w: w, h: h, cells: make([]bool, w*h)}
}

// RandomGrid returns a grid where each cell is alive independently with probability p.
func RandomGrid(w, h int, p float64, rng core.RNG) *Grid {
	g := NewGrid(w, h)
	for i := range g.cells {
		g.cells[i] = rng.Chance(p)
	}
	return g
}

// ParsePattern builds a grid from rows of '#' (alive) and any other
// character (dead). The width is that of the longest row.
func ParsePattern(rows ...string) *Grid {
	w := 0
	for _, row := range rows {
		w = core.Max(w, len([]rune(row)))
	}
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		for x, r := range []rune(row) {
			g.Set(x, y, r == '#')
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Alive reports whether the cell is alive. Out-of-range cells are dead.
func (g *Grid) Alive(x, y int) bool {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return false
	}
	return g.cells[y*g.w+x]
}

// Set changes a cell. Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = alive
}

// Neighbors counts the live cells among the 8 neighbors of (x, y),
// wrapping coordinates modulo the grid size.
func (g *Grid) Neighbors(x, y int) int {
	if g.w == 0 || g.h == 0 {
		return 0
	}
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := core.Wrap(x+dx, g.w)
			ny := core.Wrap(y+dy, g.h)
			if g.cells[ny*g.w+nx] {
				n++
			}
		}
	}
	return n
}

// Next computes the following generation into a new grid; g is not modified.
// A live cell survives with 2 or 3 live neighbors, a dead cell with exactly
// 3 becomes alive, every other cell is dead.
func (g *Grid) Next() *Grid {
	next := NewGrid(g.w, g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			next.cells[y*g.w+x] = rule(g.cells[y*g.w+x], g.Neighbors(x, y))
		}
	}
	return next
}

func rule(alive bool, n int) bool {
	if alive {
		return n == 2 || n == 3
	}
	return n == 3
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Equal reports whether two grids have the same size and cells.
// A nil grid is never equal to g.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil {
		return false
	}
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid with '#' for live and '.' for dead cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.w*g.h + g.h)
	for y := 0; y < g.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.w; x++ {
			if g.cells[y*g.w+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
