package core

// Move is a legal match: two tiles with the same symbol and the route connecting them.
type Move struct {
	A    Pos
	B    Pos
	Path []Pos
}

// FindMove returns the first legal move on the board.
// Pairs are considered with A in row-major order, then B in row-major order after A.
func FindMove(g *Grid) (Move, bool) {
	bySymbol := make(map[Symbol][]Pos)
	for _, p := range g.Occupied() {
		sym := g.Get(p).Tile.Symbol
		bySymbol[sym] = append(bySymbol[sym], p)
	}

	for _, a := range g.Occupied() {
		same := bySymbol[g.Get(a).Tile.Symbol]
		for _, b := range same {
			if !rowMajorLess(a, b) {
				continue
			}
			if path, ok := FindPath(g, a, b); ok {
				return Move{A: a, B: b, Path: path}, true
			}
		}
	}
	return Move{}, false
}

// HasAnyMove returns true if at least one pair of matching tiles can be linked.
func HasAnyMove(g *Grid) bool {
	_, ok := FindMove(g)
	return ok
}

// AllMoves returns every legal move on the board in FindMove order.
func AllMoves(g *Grid) []Move {
	occupied := g.Occupied()
	var moves []Move
	for i, a := range occupied {
		for _, b := range occupied[i+1:] {
			if !g.Get(a).Tile.Matches(g.Get(b).Tile) {
				continue
			}
			if path, ok := FindPath(g, a, b); ok {
				moves = append(moves, Move{A: a, B: b, Path: path})
			}
		}
	}
	return moves
}

func rowMajorLess(a, b Pos) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
