package core

import "fmt"

// Cell represents a single cell of the bordered grid.
type Cell struct {
	Filled bool // Whether the cell holds a tile
	Tile   Tile // Valid only when Filled is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// FilledCell returns a cell holding the given tile.
func FilledCell(t Tile) Cell {
	return Cell{Filled: true, Tile: t}
}

// Grid is the playable tile matrix surrounded by a one-cell empty border.
// Cells are stored row-major over the bordered extent: index = row*(cols+2) + col.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates an empty grid with the given playable dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, (rows+2)*(cols+2)),
	}, nil
}

// Rows returns the number of playable rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of playable columns.
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) index(p Pos) int {
	return p.Row*(g.cols+2) + p.Col
}

// InBounds returns true if the position lies within the bordered extent.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row <= g.rows+1 && p.Col >= 0 && p.Col <= g.cols+1
}

// IsPlayable returns true if the position lies within the playable region.
func (g *Grid) IsPlayable(p Pos) bool {
	return p.Row >= 1 && p.Row <= g.rows && p.Col >= 1 && p.Col <= g.cols
}

// Get returns the cell at p. Panics if p is outside the bordered extent.
func (g *Grid) Get(p Pos) Cell {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("pairlink: Get %v outside %dx%d grid", p, g.rows, g.cols))
	}
	return g.cells[g.index(p)]
}

// IsEmpty returns true if p is inside the bordered extent and holds no tile.
func (g *Grid) IsEmpty(p Pos) bool {
	return g.InBounds(p) && !g.cells[g.index(p)].Filled
}

// Set places a tile at p. Panics if p is not a playable cell.
func (g *Grid) Set(p Pos, t Tile) {
	if !g.IsPlayable(p) {
		panic(fmt.Sprintf("pairlink: Set %v outside playable %dx%d region", p, g.rows, g.cols))
	}
	g.cells[g.index(p)] = FilledCell(t)
}

// Clear empties the cell at p. Panics if p is not a playable cell.
func (g *Grid) Clear(p Pos) {
	if !g.IsPlayable(p) {
		panic(fmt.Sprintf("pairlink: Clear %v outside playable %dx%d region", p, g.rows, g.cols))
	}
	g.cells[g.index(p)] = Empty()
}

// ForEachPlayable calls fn for every playable cell in row-major order.
func (g *Grid) ForEachPlayable(fn func(p Pos, c Cell)) {
	for r := 1; r <= g.rows; r++ {
		for c := 1; c <= g.cols; c++ {
			p := P(r, c)
			fn(p, g.cells[g.index(p)])
		}
	}
}

// Occupied returns all positions holding a tile, in row-major order.
func (g *Grid) Occupied() []Pos {
	positions := make([]Pos, 0, g.rows*g.cols)
	g.ForEachPlayable(func(p Pos, c Cell) {
		if c.Filled {
			positions = append(positions, p)
		}
	})
	return positions
}

// TileCount returns the number of tiles on the grid.
func (g *Grid) TileCount() int {
	count := 0
	for _, c := range g.cells {
		if c.Filled {
			count++
		}
	}
	return count
}

// IsCleared returns true if every playable cell is empty.
func (g *Grid) IsCleared() bool {
	return g.TileCount() == 0
}

// SymbolCounts returns the number of tiles per symbol.
func (g *Grid) SymbolCounts() map[Symbol]int {
	counts := make(map[Symbol]int)
	for _, c := range g.cells {
		if c.Filled {
			counts[c.Tile.Symbol]++
		}
	}
	return counts
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
	}
}

// Equal returns true if both grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
