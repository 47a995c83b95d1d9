package core

import (
	"fmt"
	"strings"
)

// RenderASCII creates a plain text view of the session for debugging and tests.
//
// Format:
//   - Header line with level, time, tiles, status and selection
//   - Board including the border: tiles as symbol characters, empty playable
//     cells '.', border cells ' ', pending path cells '#'
func RenderASCII(s *Session) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Level: %d | Time: %s | Tiles: %d | Status: %s",
		s.levelIndex+1, FormatClock(s.timeRemaining), s.grid.TileCount(), s.status))
	if s.hasSelection {
		sb.WriteString(fmt.Sprintf(" | Selected: %v", s.selection))
	}
	sb.WriteString("\n")

	onPath := make(map[Pos]bool, len(s.pendingPath))
	for _, p := range s.pendingPath {
		onPath[p] = true
	}

	for r := 0; r <= s.grid.Rows()+1; r++ {
		for c := 0; c <= s.grid.Cols()+1; c++ {
			p := P(r, c)
			cell := s.grid.Get(p)
			switch {
			case cell.Filled:
				sb.WriteRune(cell.Tile.Symbol.Char())
			case onPath[p]:
				sb.WriteRune('#')
			case s.grid.IsPlayable(p):
				sb.WriteRune('.')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderGrid renders the playable region only, one line per row.
func RenderGrid(g *Grid) string {
	var sb strings.Builder
	for r := 1; r <= g.Rows(); r++ {
		for c := 1; c <= g.Cols(); c++ {
			cell := g.Get(P(r, c))
			if cell.Filled {
				sb.WriteRune(cell.Tile.Symbol.Char())
			} else {
				sb.WriteRune('.')
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderGridCompact renders the playable region as a single line (for hashing/comparison).
func RenderGridCompact(g *Grid) string {
	return strings.ReplaceAll(RenderGrid(g), "\n", "")
}

// ParseGrid builds a grid from rows of symbol characters, '.' for empty cells.
// All rows must have the same length.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	g, err := NewGrid(len(rows), cols)
	if err != nil {
		return nil, err
	}

	placed := 0
	for r, line := range rows {
		if len(line) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r+1, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			ch := line[c]
			if ch == '.' {
				continue
			}
			idx := strings.IndexByte(symbolChars, ch)
			if idx < 0 {
				return nil, fmt.Errorf("row %d col %d: unknown symbol %q", r+1, c+1, ch)
			}
			g.Set(P(r+1, c+1), Tile{Symbol: Symbol(idx), ColorSlot: placed % ColorSlots})
			placed++
		}
	}
	return g, nil
}

// FormatClock formats seconds as mm:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
