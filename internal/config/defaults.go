package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/pairlink/internal/games/pairlink/core"
)

//go:embed defaults/pairlink.yaml
var defaultPairLinkYAML []byte

// DefaultPairLinkConfig returns the default PairLink configuration.
func DefaultPairLinkConfig() PairLinkConfig {
	table := core.DefaultLevelTable()
	levels := make([]LevelConfig, len(table.Levels))
	for i, l := range table.Levels {
		levels[i] = LevelConfig{Cols: l.Cols, Rows: l.Rows, Time: l.Time}
	}

	return PairLinkConfig{
		Levels:          levels,
		TimeDiscount:    table.CycleDiscount,
		MinTime:         table.MinTime,
		ResolveDelayMS:  int(core.DefaultResolveDelay / time.Millisecond),
		ShuffleAttempts: core.DefaultShuffleAttempts,
		Symbols:         core.SymbolCount,
		Glyphs:          GlyphsEmoji,
	}
}
