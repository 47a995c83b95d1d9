package pairlink

import (
	platformcore "github.com/vovakirdan/pairlink/internal/core"
	"github.com/vovakirdan/pairlink/internal/games/pairlink/core"
)

const (
	cellWidth = 4 // Room for a two-column emoji with a margin each side
	hudHeight = 3 // Title, stats, blank line
)

// layout places the bordered grid on screen.
// Border cells are drawn too, since link paths can run through them.
type layout struct {
	originX  int // Screen position of bordered cell (0,0)
	originY  int
	cellW    int
	cellH    int
	rows     int // Playable rows
	cols     int
	tooSmall bool
}

func computeLayout(screenW, screenH, rows, cols int) layout {
	l := layout{cellW: cellWidth, cellH: 2, rows: rows, cols: cols}

	// Frame + status line below the board
	need := func(cellH int) int { return hudHeight + (rows+2)*cellH + 2 + 1 }
	if need(l.cellH) > screenH {
		l.cellH = 1
	}

	boardW := (cols + 2) * l.cellW
	if boardW+2 > screenW || need(l.cellH) > screenH {
		l.tooSmall = true
		return l
	}

	l.originX = (screenW - boardW) / 2
	l.originY = hudHeight + 1
	return l
}

// boardRect returns the screen area of the bordered grid.
func (l layout) boardRect() platformcore.Rect {
	return platformcore.NewRect(l.originX, l.originY, (l.cols+2)*l.cellW, (l.rows+2)*l.cellH)
}

// cellRect returns the screen area of a bordered-grid cell.
func (l layout) cellRect(p core.Pos) platformcore.Rect {
	return platformcore.NewRect(l.originX+p.Col*l.cellW, l.originY+p.Row*l.cellH, l.cellW, l.cellH)
}

// posAt maps a screen position to the bordered-grid cell under it, border included.
func (l layout) posAt(x, y int) (core.Pos, bool) {
	if l.tooSmall || !l.boardRect().Contains(x, y) {
		return core.Pos{}, false
	}
	return core.P((y-l.originY)/l.cellH, (x-l.originX)/l.cellW), true
}

// cellAt maps a screen position to the playable cell under it.
func (l layout) cellAt(x, y int) (core.Pos, bool) {
	p, ok := l.posAt(x, y)
	if !ok || p.Row < 1 || p.Row > l.rows || p.Col < 1 || p.Col > l.cols {
		return core.Pos{}, false
	}
	return p, true
}
