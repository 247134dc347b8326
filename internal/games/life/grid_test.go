package life

import (
	"testing"

	"github.com/vovakirdan/tui-minigames/internal/core"
)

// constRNG answers every draw the same way and records the probabilities asked for.
type constRNG struct {
	alive bool
	probs []float64
}

func (r *constRNG) Chance(p float64) bool {
	r.probs = append(r.probs, p)
	return r.alive
}

func (r *constRNG) IntN(int) int { return 0 }

func TestNeighborsWrapAround(t *testing.T) {
	const w, h = 5, 4

	tests := []struct {
		name   string
		liveX  int
		liveY  int
		cellX  int
		cellY  int
		expect int
	}{
		{"opposite corner", w - 1, h - 1, 0, 0, 1},
		{"left edge sees right edge", w - 1, 2, 0, 2, 1},
		{"top edge sees bottom edge", 2, h - 1, 2, 0, 1},
		{"bottom-right sees top-left", 0, 0, w - 1, h - 1, 1},
		{"not a neighbor", 2, 2, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(w, h)
			g.Set(tc.liveX, tc.liveY, true)
			if n := g.Neighbors(tc.cellX, tc.cellY); n != tc.expect {
				t.Errorf("Neighbors(%d, %d) = %d, expected %d", tc.cellX, tc.cellY, n, tc.expect)
			}
		})
	}
}

func TestNeighborsExcludesSelf(t *testing.T) {
	g := ParsePattern(
		"...",
		".#.",
		"...",
	)
	if n := g.Neighbors(1, 1); n != 0 {
		t.Errorf("Neighbors(1, 1) = %d, expected 0 (a cell is not its own neighbor)", n)
	}
}

func TestNeighborsFullGrid(t *testing.T) {
	g := ParsePattern(
		"####",
		"####",
		"####",
		"####",
	)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if n := g.Neighbors(x, y); n != 8 {
				t.Errorf("Neighbors(%d, %d) = %d, expected 8", x, y, n)
			}
		}
	}
}

func TestRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := rule(true, n); got != wantAlive {
			t.Errorf("rule(alive, %d) = %v, expected %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := rule(false, n); got != wantBorn {
			t.Errorf("rule(dead, %d) = %v, expected %v", n, got, wantBorn)
		}
	}
}

func TestNextAppliesRuleToEveryCell(t *testing.T) {
	g := RandomGrid(17, 11, 0.3, core.NewRNG(99))
	next := g.Next()

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			n := g.Neighbors(x, y)
			alive := g.Alive(x, y)
			want := (alive && (n == 2 || n == 3)) || (!alive && n == 3)
			if next.Alive(x, y) != want {
				t.Fatalf("cell (%d, %d) alive=%v n=%d: next = %v, expected %v", x, y, alive, n, next.Alive(x, y), want)
			}
		}
	}
}

func TestNextDoesNotMutate(t *testing.T) {
	g := ParsePattern(
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	)
	before := g.String()
	next := g.Next()

	if g.String() != before {
		t.Error("Next() modified the current generation")
	}
	if next == g {
		t.Error("Next() must return a fresh grid")
	}
}

func TestBlinkerOscillates(t *testing.T) {
	horizontal := ParsePattern(
		".....",
		".....",
		".###.",
		".....",
		".....",
	)
	vertical := ParsePattern(
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	)

	g := horizontal
	for gen := 1; gen <= 4; gen++ {
		g = g.Next()
		want := vertical
		if gen%2 == 0 {
			want = horizontal
		}
		if !g.Equal(want) {
			t.Fatalf("generation %d:\n%s\nexpected:\n%s", gen, g, want)
		}
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	rng := &constRNG{alive: false}
	g := RandomGrid(4, 4, 0.3, rng)

	if g.Population() != 0 {
		t.Fatalf("seed population = %d, expected 0", g.Population())
	}
	if next := g.Next(); next.Population() != 0 {
		t.Errorf("all-dead grid produced %d live cells", next.Population())
	}
}

func TestIsolatedCellDies(t *testing.T) {
	sizes := []struct{ w, h int }{{3, 3}, {4, 4}, {10, 7}, {80, 23}}

	for _, sz := range sizes {
		g := NewGrid(sz.w, sz.h)
		g.Set(sz.w/2, sz.h/2, true)

		next := g.Next()
		if next.Population() != 0 {
			t.Errorf("%dx%d: isolated cell left %d live cells", sz.w, sz.h, next.Population())
		}
	}
}

func TestBlockIsStill(t *testing.T) {
	block := ParsePattern(
		"....",
		".##.",
		".##.",
		"....",
	)
	if next := block.Next(); !next.Equal(block) {
		t.Errorf("block changed:\n%s", next)
	}
}

func TestRandomGridUsesProbability(t *testing.T) {
	rng := &constRNG{alive: true}
	g := RandomGrid(6, 3, 0.3, rng)

	if len(rng.probs) != 18 {
		t.Fatalf("drew %d cells, expected 18", len(rng.probs))
	}
	for _, p := range rng.probs {
		if p != 0.3 {
			t.Errorf("draw probability = %v, expected 0.3", p)
		}
	}
	if g.Population() != 18 {
		t.Errorf("Population() = %d, expected 18", g.Population())
	}
}

func TestRandomGridDeterministic(t *testing.T) {
	a := RandomGrid(20, 10, 0.3, core.NewRNG(5))
	b := RandomGrid(20, 10, 0.3, core.NewRNG(5))
	if !a.Equal(b) {
		t.Error("same seed produced different grids")
	}
}

func TestZeroSizedGrid(t *testing.T) {
	for _, sz := range []struct{ w, h int }{{0, 0}, {0, 5}, {5, 0}, {-1, 3}} {
		g := NewGrid(sz.w, sz.h)
		if g.Width() != 0 || g.Height() != 0 {
			t.Errorf("NewGrid(%d, %d) = %dx%d, expected 0x0", sz.w, sz.h, g.Width(), g.Height())
		}
		if n := g.Neighbors(0, 0); n != 0 {
			t.Errorf("Neighbors on empty grid = %d, expected 0", n)
		}
		if next := g.Next(); next.Width() != 0 || next.Population() != 0 {
			t.Error("Next() on empty grid should be empty")
		}
	}
}

func TestSetAliveBounds(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(-1, 0, true)
	g.Set(3, 0, true)
	g.Set(0, 3, true)

	if g.Population() != 0 {
		t.Error("out-of-range Set should be ignored")
	}
	if g.Alive(-1, 0) || g.Alive(0, 9) {
		t.Error("out-of-range cells should read as dead")
	}
}

func TestParsePatternString(t *testing.T) {
	g := ParsePattern("#.", ".#", "#")
	expected := "#.\n.#\n#."
	if g.String() != expected {
		t.Errorf("String() = %q, expected %q", g.String(), expected)
	}
	if g.Width() != 2 || g.Height() != 3 {
		t.Errorf("size = %dx%d, expected 2x3", g.Width(), g.Height())
	}
}

func TestGridEqual(t *testing.T) {
	g := ParsePattern("#.", ".#")

	tests := []struct {
		name     string
		other    *Grid
		expected bool
	}{
		{"same cells", ParsePattern("#.", ".#"), true},
		{"different cells", ParsePattern(".#", "#."), false},
		{"different size", ParsePattern("#..", ".#."), false},
		{"nil", nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Equal(tc.other); got != tc.expected {
				t.Errorf("Equal() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
