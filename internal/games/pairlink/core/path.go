package core

// MaxTurns is the maximum number of direction changes a connecting route may use.
const MaxTurns = 2

// searchNode is one state of the path search: a position reached by moving in dir
// after using turns direction changes. parent indexes the node it was expanded from.
type searchNode struct {
	pos    Pos
	dir    Dir
	turns  int
	parent int
}

// FindPath searches for an orthogonal route from start to end with at most MaxTurns turns.
//
// The route may pass through empty cells, including the border around the playable
// region. start and end are the only occupied cells allowed on the route. Symbol
// equality is not checked here; routability depends only on occupancy.
//
// The search is breadth-first over (position, direction, turns) states with directions
// tried in the order Up, Right, Down, Left, so the first route found uses the fewest
// steps and the result is deterministic. The returned path runs from start to end
// inclusive. Returns false if start == end, either position lies outside the
// bordered extent, or no route exists.
func FindPath(g *Grid, start, end Pos) ([]Pos, bool) {
	if start == end || !g.InBounds(start) || !g.InBounds(end) {
		return nil, false
	}

	w := g.cols + 2
	h := g.rows + 2

	// best[(row*w+col)*4+dir] is the fewest turns seen arriving at a cell moving in dir.
	best := make([]int, w*h*4)
	for i := range best {
		best[i] = MaxTurns + 1
	}

	nodes := make([]searchNode, 0, w*h)
	nodes = append(nodes, searchNode{pos: start, dir: DirNone, parent: -1})

	for head := 0; head < len(nodes); head++ {
		cur := nodes[head]

		for _, d := range Directions {
			if cur.dir != DirNone && d == cur.dir.Opposite() {
				continue
			}

			turns := cur.turns
			if cur.dir != DirNone && d != cur.dir {
				turns++
			}
			if turns > MaxTurns {
				continue
			}

			next := cur.pos.Step(d)
			if next == end {
				return buildPath(nodes, head, end), true
			}
			if !g.IsEmpty(next) {
				continue
			}

			key := (next.Row*w+next.Col)*4 + int(d)
			if best[key] <= turns {
				continue
			}
			best[key] = turns

			nodes = append(nodes, searchNode{pos: next, dir: d, turns: turns, parent: head})
		}
	}

	return nil, false
}

// buildPath walks parent links back from nodes[last] and appends end.
func buildPath(nodes []searchNode, last int, end Pos) []Pos {
	length := 1
	for i := last; i >= 0; i = nodes[i].parent {
		length++
	}

	path := make([]Pos, length)
	path[length-1] = end
	k := length - 2
	for i := last; i >= 0; i = nodes[i].parent {
		path[k] = nodes[i].pos
		k--
	}
	return path
}

// Turns returns the number of direction changes along a path of orthogonal steps.
// Returns -1 if two consecutive positions are not orthogonal neighbours.
func Turns(path []Pos) int {
	turns := 0
	prev := DirNone
	for i := 1; i < len(path); i++ {
		d := path[i-1].DirTo(path[i])
		if d == DirNone {
			return -1
		}
		if prev != DirNone && d != prev {
			turns++
		}
		prev = d
	}
	return turns
}

// CanLink returns true if the tiles at a and b match and are connected by a legal route.
func CanLink(g *Grid, a, b Pos) bool {
	if !g.IsPlayable(a) || !g.IsPlayable(b) {
		return false
	}
	ca, cb := g.Get(a), g.Get(b)
	if !ca.Filled || !cb.Filled || !ca.Tile.Matches(cb.Tile) {
		return false
	}
	_, ok := FindPath(g, a, b)
	return ok
}
