package core

import "math/rand"

// DefaultShuffleAttempts is the number of random redistributions tried before the fallback.
const DefaultShuffleAttempts = 12

// ShuffleResult describes how a shuffle produced its arrangement.
type ShuffleResult struct {
	Attempts int  // Random redistributions performed
	Forced   bool // True if the constructive fallback placed a matching pair
}

// Shuffle redistributes the remaining tiles over the currently occupied positions.
//
// Empty cells stay empty and the multiset of tiles is preserved. Up to attempts
// uniform random permutations are tried until one has a legal move. If none does,
// the fallback finds two occupied positions that can be routed to each other and
// swaps a matching tile into the second, which always yields a legal move.
// Routability depends only on occupancy, so if no two occupied positions are
// routable no arrangement can be playable and ErrDeadlock is returned with the
// last random arrangement left in place. Any board with at least two tiles has a
// routable pair (two nearest tiles sharing a row or column, or an L route), so
// ErrDeadlock only occurs for boards that cannot hold a pair.
func Shuffle(g *Grid, rng *rand.Rand, attempts int) (ShuffleResult, error) {
	positions := g.Occupied()
	if len(positions) == 0 {
		return ShuffleResult{}, nil
	}

	tiles := make([]Tile, len(positions))
	for i, p := range positions {
		tiles[i] = g.Get(p).Tile
	}

	var result ShuffleResult
	for result.Attempts < attempts {
		result.Attempts++
		rng.Shuffle(len(tiles), func(i, j int) {
			tiles[i], tiles[j] = tiles[j], tiles[i]
		})
		for i, p := range positions {
			g.Set(p, tiles[i])
		}
		if HasAnyMove(g) {
			return result, nil
		}
	}

	if forcePair(g, positions) {
		result.Forced = true
		return result, nil
	}
	return result, ErrDeadlock
}

// forcePair makes the first routable pair of positions hold matching tiles.
func forcePair(g *Grid, positions []Pos) bool {
	for i, a := range positions {
		sym := g.Get(a).Tile.Symbol
		partner, ok := findPartner(g, positions, a, sym)
		if !ok {
			continue
		}
		for _, b := range positions[i+1:] {
			if _, routable := FindPath(g, a, b); !routable {
				continue
			}
			if partner != b {
				tb := g.Get(b).Tile
				g.Set(b, g.Get(partner).Tile)
				g.Set(partner, tb)
			}
			return true
		}
	}
	return false
}

// findPartner returns another occupied position whose tile carries sym.
func findPartner(g *Grid, positions []Pos, self Pos, sym Symbol) (Pos, bool) {
	for _, p := range positions {
		if p != self && g.Get(p).Tile.Symbol == sym {
			return p, true
		}
	}
	return Pos{}, false
}
