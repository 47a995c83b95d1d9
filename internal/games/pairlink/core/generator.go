package core

import (
	"fmt"
	"math/rand"
)

// PairsNeeded returns how many tile pairs fill a rows x cols board.
func PairsNeeded(rows, cols int) (int, error) {
	if rows <= 0 || cols <= 0 {
		return 0, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	if (rows*cols)%2 != 0 {
		return 0, fmt.Errorf("%dx%d: %w", rows, cols, ErrOddTileCount)
	}
	return rows * cols / 2, nil
}

// ChooseSymbols picks pairsNeeded symbols from the pool.
//
// Symbols are drawn in rounds: each round is a fresh uniform permutation of the
// whole pool, consumed in order until enough symbols are chosen. A symbol is
// therefore chosen at most ceil(pairsNeeded/len(pool)) times, and exactly once
// when pairsNeeded <= len(pool).
func ChooseSymbols(pairsNeeded int, pool []Symbol, rng *rand.Rand) ([]Symbol, error) {
	if pairsNeeded <= 0 {
		return []Symbol{}, nil
	}
	if len(pool) == 0 {
		return nil, ErrSymbolPoolEmpty
	}

	choices := make([]Symbol, 0, pairsNeeded)
	for len(choices) < pairsNeeded {
		for _, i := range rng.Perm(len(pool)) {
			if len(choices) == pairsNeeded {
				break
			}
			choices = append(choices, pool[i])
		}
	}
	return choices, nil
}

// GenerateTiles produces the shuffled tile sequence for a board of pairsNeeded pairs.
// Every chosen symbol appears twice; color slots follow the final sequence order.
func GenerateTiles(pairsNeeded int, pool []Symbol, rng *rand.Rand) ([]Tile, error) {
	choices, err := ChooseSymbols(pairsNeeded, pool, rng)
	if err != nil {
		return nil, err
	}

	symbols := make([]Symbol, 0, 2*len(choices))
	for _, s := range choices {
		symbols = append(symbols, s, s)
	}
	rng.Shuffle(len(symbols), func(i, j int) {
		symbols[i], symbols[j] = symbols[j], symbols[i]
	})

	tiles := make([]Tile, len(symbols))
	for i, s := range symbols {
		tiles[i] = Tile{Symbol: s, ColorSlot: i % ColorSlots}
	}
	return tiles, nil
}

// BuildGrid creates a fully populated rows x cols grid.
// Tiles are placed row-major in the order produced by GenerateTiles.
func BuildGrid(rows, cols int, pool []Symbol, rng *rand.Rand) (*Grid, error) {
	pairs, err := PairsNeeded(rows, cols)
	if err != nil {
		return nil, err
	}

	tiles, err := GenerateTiles(pairs, pool, rng)
	if err != nil {
		return nil, err
	}

	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	i := 0
	g.ForEachPlayable(func(p Pos, _ Cell) {
		g.Set(p, tiles[i])
		i++
	})
	return g, nil
}
