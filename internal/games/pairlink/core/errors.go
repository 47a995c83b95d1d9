package core

import "errors"

var (
	// ErrOddTileCount is returned when rows*cols cannot be split into pairs.
	ErrOddTileCount = errors.New("grid must contain an even number of tiles")

	// ErrInvalidDimensions is returned for non-positive grid dimensions.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")

	// ErrSymbolPoolEmpty is returned when tiles are requested from an empty pool.
	ErrSymbolPoolEmpty = errors.New("symbol pool is empty")

	// ErrEmptyLevelTable is returned when a level table has no entries.
	ErrEmptyLevelTable = errors.New("level table is empty")

	// ErrDeadlock is returned by Shuffle when no arrangement of the remaining
	// tiles over the occupied positions can produce a legal match.
	ErrDeadlock = errors.New("no arrangement of remaining tiles has a legal match")
)
