package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("Parse(defaultYAML) failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultConfig() %+v", cfg, DefaultConfig())
	}
}

func TestDefaultPacing(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Life.FrameBudget != time.Second {
		t.Errorf("life frame budget = %v, expected 1s", cfg.Life.FrameBudget)
	}
	if cfg.Life.Probability != 0.3 {
		t.Errorf("life probability = %v, expected 0.3", cfg.Life.Probability)
	}
	if cfg.RandomWalk.FrameBudget != 30*time.Millisecond || cfg.BouncingBall.FrameBudget != 30*time.Millisecond {
		t.Error("point animations should default to a 30ms frame budget")
	}
	if cfg.QuitRune() != 'q' {
		t.Errorf("QuitRune() = %q, expected 'q'", cfg.QuitRune())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("life:\n  frame_budget: 250ms\nbouncing_ball:\n  glyph: \"@\"\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Life.FrameBudget != 250*time.Millisecond {
		t.Errorf("life frame budget = %v, expected 250ms", cfg.Life.FrameBudget)
	}
	if cfg.Life.Probability != 0.3 {
		t.Errorf("unspecified probability should keep default, got %v", cfg.Life.Probability)
	}
	if cfg.BouncingBall.GlyphRune() != '@' {
		t.Errorf("ball glyph = %q, expected '@'", cfg.BouncingBall.GlyphRune())
	}
	if cfg.BouncingBall.Poll != 30*time.Millisecond {
		t.Errorf("unspecified poll should keep default, got %v", cfg.BouncingBall.Poll)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"probability too high", "life:\n  probability: 1.5\n", "life.probability"},
		{"negative budget", "random_walk:\n  frame_budget: -1s\n", "random_walk.frame_budget"},
		{"long glyph", "bouncing_ball:\n  glyph: \"oo\"\n", "bouncing_ball.glyph"},
		{"digit quit key", "quit_key: \"1\"\n", "collides"},
		{"empty quit key", "quit_key: \"\"\n", "quit_key"},
		{"malformed yaml", "life: [", "parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("quit_key: x\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.QuitRune() != 'x' {
		t.Errorf("QuitRune() = %q, expected 'x'", cfg.QuitRune())
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}
