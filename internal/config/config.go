// Package config provides YAML-based configuration loading for PairLink.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pairlink/internal/games/pairlink/core"
)

// Glyph sets for drawing tile faces.
const (
	GlyphsEmoji = "emoji"
	GlyphsASCII = "ascii"
)

// PairLinkConfig contains all configuration for the PairLink game.
type PairLinkConfig struct {
	Levels          []LevelConfig `yaml:"levels"`
	TimeDiscount    int           `yaml:"time_discount"`    // Seconds removed per completed cycle
	MinTime         int           `yaml:"min_time"`         // Floor for discounted time budgets
	ResolveDelayMS  int           `yaml:"resolve_delay_ms"` // Path highlight before removal
	ShuffleAttempts int           `yaml:"shuffle_attempts"`
	Symbols         int           `yaml:"symbols"` // Symbol pool size
	Glyphs          string        `yaml:"glyphs"`  // emoji or ascii
}

// LevelConfig defines one entry of the level table.
type LevelConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
	Time int `yaml:"time"` // Seconds
}

// LevelTable converts the configured levels to the game's level table.
func (c PairLinkConfig) LevelTable() core.LevelTable {
	levels := make([]core.LevelSettings, len(c.Levels))
	for i, l := range c.Levels {
		levels[i] = core.LevelSettings{Cols: l.Cols, Rows: l.Rows, Time: l.Time}
	}
	return core.LevelTable{
		Levels:        levels,
		CycleDiscount: c.TimeDiscount,
		MinTime:       c.MinTime,
	}
}

// ResolveDelay returns the highlight delay as a duration.
func (c PairLinkConfig) ResolveDelay() time.Duration {
	return time.Duration(c.ResolveDelayMS) * time.Millisecond
}

// SymbolPool returns the configured symbol pool.
func (c PairLinkConfig) SymbolPool() []core.Symbol {
	return core.SymbolPool(c.Symbols)
}

// ASCII reports whether tiles should be drawn with letters instead of emoji.
func (c PairLinkConfig) ASCII() bool {
	return c.Glyphs == GlyphsASCII
}

// Validate checks the configuration before any board is built.
func (c PairLinkConfig) Validate() error {
	if err := c.LevelTable().Validate(); err != nil {
		return fmt.Errorf("levels: %w", err)
	}
	// Zero would be replaced by the session defaults.
	if c.ResolveDelayMS < 1 {
		return fmt.Errorf("resolve_delay_ms must be at least 1, got %d", c.ResolveDelayMS)
	}
	if c.ShuffleAttempts < 1 {
		return fmt.Errorf("shuffle_attempts must be at least 1, got %d", c.ShuffleAttempts)
	}
	if c.Symbols < 1 || c.Symbols > core.SymbolCount {
		return fmt.Errorf("symbols must be between 1 and %d, got %d", core.SymbolCount, c.Symbols)
	}
	switch c.Glyphs {
	case GlyphsEmoji, GlyphsASCII:
	default:
		return fmt.Errorf("glyphs must be %q or %q, got %q", GlyphsEmoji, GlyphsASCII, c.Glyphs)
	}
	return nil
}
