package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		color    Color
		expected int
	}{
		{ColorDefault, -1},
		{ColorBlack, 0},
		{ColorRed, 1},
		{ColorMagenta, 5},
		{ColorCyan, 6},
		{ColorBrightBlack, 8},
		{ColorBrightGreen, 10},
		{ColorBrightWhite, 15},
		{Color(200), -1},
	}

	for _, tc := range tests {
		if got := tc.color.ANSI(); got != tc.expected {
			t.Errorf("%s.ANSI() = %d, expected %d", tc.color, got, tc.expected)
		}
	}
}

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 100; i++ {
		if a.IntN(4) != b.IntN(4) {
			t.Fatalf("IntN sequence diverged at draw %d", i)
		}
		if a.Chance(0.3) != b.Chance(0.3) {
			t.Fatalf("Chance sequence diverged at draw %d", i)
		}
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(7)

	for i := 0; i < 1000; i++ {
		if v := r.IntN(4); v < 0 || v >= 4 {
			t.Fatalf("IntN(4) = %d, expected [0, 4)", v)
		}
	}
	if r.IntN(0) != 0 {
		t.Error("IntN(0) should return 0")
	}
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}

func TestRNGChanceRate(t *testing.T) {
	r := NewRNG(12345)
	const n = 20000
	alive := 0
	for i := 0; i < n; i++ {
		if r.Chance(0.3) {
			alive++
		}
	}
	rate := float64(alive) / n
	if rate < 0.27 || rate > 0.33 {
		t.Errorf("Chance(0.3) hit rate = %.3f, expected about 0.3", rate)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.QuitKey != 'q' {
		t.Errorf("QuitKey = %q, expected 'q'", cfg.QuitKey)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, expected 0", cfg.Seed)
	}
}
