package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/minigames.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in settings, matching defaults/minigames.yaml.
func DefaultConfig() Config {
	return Config{
		QuitKey: "q",
		Life: LifeConfig{
			Probability: 0.3,
			FrameBudget: time.Second,
		},
		RandomWalk: PointConfig{
			Glyph:       "*",
			Poll:        50 * time.Millisecond,
			FrameBudget: 30 * time.Millisecond,
		},
		BouncingBall: PointConfig{
			Glyph:       "o",
			Poll:        30 * time.Millisecond,
			FrameBudget: 30 * time.Millisecond,
		},
	}
}
