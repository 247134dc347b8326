// Package config provides YAML-based settings loading for the mini-games
// launcher. Only pacing and cosmetics are configurable; the Life rules are fixed.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// Config contains all launcher settings.
type Config struct {
	QuitKey      string      `yaml:"quit_key"`
	Life         LifeConfig  `yaml:"life"`
	RandomWalk   PointConfig `yaml:"random_walk"`
	BouncingBall PointConfig `yaml:"bouncing_ball"`
}

// LifeConfig defines the Game of Life seeding and cadence.
type LifeConfig struct {
	Probability float64       `yaml:"probability"`  // Chance a cell starts alive
	FrameBudget time.Duration `yaml:"frame_budget"` // Target duration of one generation
}

// PointConfig defines a single-glyph animation.
type PointConfig struct {
	Glyph       string        `yaml:"glyph"`
	Poll        time.Duration `yaml:"poll"`         // Key poll timeout per frame
	FrameBudget time.Duration `yaml:"frame_budget"` // Pause after each frame
}

// QuitRune returns the quit key as a rune.
func (c Config) QuitRune() rune {
	r, _ := utf8.DecodeRuneInString(c.QuitKey)
	return r
}

// GlyphRune returns the glyph as a rune.
func (p PointConfig) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(p.Glyph)
	return r
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error

	if utf8.RuneCountInString(c.QuitKey) != 1 {
		errs = append(errs, fmt.Errorf("quit_key must be a single character, got %q", c.QuitKey))
	} else if r := c.QuitRune(); r >= '0' && r <= '9' {
		errs = append(errs, fmt.Errorf("quit_key %q collides with the menu digits", c.QuitKey))
	}

	if c.Life.Probability < 0 || c.Life.Probability > 1 {
		errs = append(errs, fmt.Errorf("life.probability must be within [0, 1], got %v", c.Life.Probability))
	}
	if c.Life.FrameBudget < 0 {
		errs = append(errs, fmt.Errorf("life.frame_budget must not be negative, got %v", c.Life.FrameBudget))
	}

	errs = append(errs, c.RandomWalk.validate("random_walk")...)
	errs = append(errs, c.BouncingBall.validate("bouncing_ball")...)

	return errors.Join(errs...)
}

func (p PointConfig) validate(section string) []error {
	var errs []error
	if utf8.RuneCountInString(p.Glyph) != 1 {
		errs = append(errs, fmt.Errorf("%s.glyph must be a single character, got %q", section, p.Glyph))
	}
	if p.Poll < 0 {
		errs = append(errs, fmt.Errorf("%s.poll must not be negative, got %v", section, p.Poll))
	}
	if p.FrameBudget < 0 {
		errs = append(errs, fmt.Errorf("%s.frame_budget must not be negative, got %v", section, p.FrameBudget))
	}
	return errs
}
