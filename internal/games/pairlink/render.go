package pairlink

import (
	"fmt"

	platformcore "github.com/vovakirdan/pairlink/internal/core"
	"github.com/vovakirdan/pairlink/internal/games/pairlink/core"
)

// tilePalette maps tile color slots to background colors.
var tilePalette = [core.ColorSlots]platformcore.Color{
	platformcore.ColorRed,
	platformcore.ColorGreen,
	platformcore.ColorYellow,
	platformcore.ColorBlue,
	platformcore.ColorMagenta,
	platformcore.ColorCyan,
	platformcore.ColorOrange,
	platformcore.ColorPink,
	platformcore.ColorTeal,
}

var (
	styleTitle    = platformcore.Fg(platformcore.ColorBrightCyan).WithBold()
	styleHUD      = platformcore.Fg(platformcore.ColorWhite)
	styleLowTime  = platformcore.Fg(platformcore.ColorBrightRed).WithBold()
	styleFrame    = platformcore.Fg(platformcore.ColorGray)
	styleStatus   = platformcore.Fg(platformcore.ColorBrightWhite)
	stylePath     = platformcore.Fg(platformcore.ColorBrightYellow).WithBold()
	styleCursor   = platformcore.Fg(platformcore.ColorBrightWhite).WithBold()
	styleSelected = platformcore.Fg(platformcore.ColorBlack).WithBG(platformcore.ColorBrightYellow).WithBold()
	styleHint     = platformcore.Fg(platformcore.ColorBlack).WithBG(platformcore.ColorBrightGreen).WithBold()
	styleOverlay  = platformcore.Fg(platformcore.ColorBrightWhite).WithBG(platformcore.ColorSlate).WithBold()
)

// lowTime is when the timer turns red.
const lowTime = 20

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.session == nil {
		dst.DrawTextCentered(dst.Height()/2, "PairLink cannot start", styleLowTime)
		dst.DrawTextCentered(dst.Height()/2+1, g.message, styleStatus)
		return
	}

	if g.layout.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)

	box := g.layout.boardRect()
	statusY := box.Bottom() + 1
	dst.DrawTextCentered(statusY, g.message, styleStatus)

	g.renderOverlays(dst)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", styleStatus)
	need := fmt.Sprintf("Need %dx%d for this level", (g.session.Cols()+2)*cellWidth+2, hudHeight+g.session.Rows()+2+3)
	dst.DrawTextCentered(y+1, need, styleHUD)
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	box := g.layout.boardRect()
	left := box.X - 1

	dst.DrawTextCentered(0, "PairLink", styleTitle)

	s := g.session
	dst.DrawTextStyled(left, 1, fmt.Sprintf("Level %d", s.LevelIndex()+1), styleHUD)

	score := fmt.Sprintf("Score %d", g.score)
	dst.DrawTextStyled(box.X+(box.W-platformcore.TextWidth(score))/2, 1, score, styleHUD)

	clock := fmt.Sprintf("Time %s  Tiles %d", core.FormatClock(s.TimeRemaining()), s.TilesRemaining())
	clockStyle := styleHUD
	if s.TimeRemaining() <= lowTime {
		clockStyle = styleLowTime
	}
	dst.DrawTextStyled(box.Right()+1-platformcore.TextWidth(clock), 1, clock, clockStyle)
}

func (g *Game) renderBoard(dst *platformcore.Screen) {
	l := g.layout
	box := l.boardRect()
	dst.DrawBox(platformcore.NewRect(box.X-1, box.Y-1, box.W+2, box.H+2), styleFrame)

	s := g.session
	sel, hasSel := s.Selection()
	path := s.PendingPath()

	onPath := make(map[core.Pos]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	for r := 1; r <= s.Rows(); r++ {
		for c := 1; c <= s.Cols(); c++ {
			p := core.P(r, c)
			cell := s.Cell(p)
			if !cell.Filled {
				continue
			}

			st := platformcore.Fg(platformcore.ColorBlack).WithBG(tilePalette[cell.Tile.ColorSlot%core.ColorSlots])
			switch {
			case onPath[p] || (hasSel && sel == p):
				st = styleSelected
			case g.hint != nil && (g.hint.A == p || g.hint.B == p):
				st = styleHint
			}
			g.drawTile(dst, p, cell.Tile, st)
		}
	}

	for i := 1; i < len(path)-1; i++ {
		g.drawPathCell(dst, path[i-1], path[i], path[i+1])
	}

	g.drawCursor(dst)
}

func (g *Game) drawTile(dst *platformcore.Screen, p core.Pos, t core.Tile, st platformcore.Style) {
	r := g.layout.cellRect(p)
	dst.FillRect(r, ' ', st)

	y := r.Y + (r.H-1)/2
	if g.opts.Config.ASCII() {
		dst.SetStyled(r.X+1, y, t.Symbol.Char(), st)
		return
	}
	dst.SetWide(r.X+1, y, t.Symbol.Glyph(), st)
}

// drawPathCell draws the route segment through cur, joining the sides facing prev and next.
func (g *Game) drawPathCell(dst *platformcore.Screen, prev, cur, next core.Pos) {
	var up, right, down, left bool
	for _, d := range []core.Dir{cur.DirTo(prev), cur.DirTo(next)} {
		switch d {
		case core.DirUp:
			up = true
		case core.DirRight:
			right = true
		case core.DirDown:
			down = true
		case core.DirLeft:
			left = true
		}
	}

	r := g.layout.cellRect(cur)
	mid := r.X + 1
	y := r.Y + (r.H-1)/2

	for x := r.X; x < r.Right(); x++ {
		switch {
		case x < mid && left, x > mid && right:
			dst.SetStyled(x, y, '─', stylePath)
		case x == mid:
			dst.SetStyled(x, y, junction(up, right, down, left), stylePath)
		}
	}
	for dy := y - r.Y + 1; down && dy < r.H; dy++ {
		dst.SetStyled(mid, r.Y+dy, '│', stylePath)
	}
	for dy := 0; up && dy < y-r.Y; dy++ {
		dst.SetStyled(mid, r.Y+dy, '│', stylePath)
	}
}

func junction(up, right, down, left bool) rune {
	switch {
	case left && right:
		return '─'
	case up && down:
		return '│'
	case down && right:
		return '┌'
	case down && left:
		return '┐'
	case up && right:
		return '└'
	case up && left:
		return '┘'
	default:
		return '·'
	}
}

func (g *Game) drawCursor(dst *platformcore.Screen) {
	if g.session.Status() != core.StatusPlaying && g.session.Status() != core.StatusAwaitingResolution {
		return
	}
	r := g.layout.cellRect(g.cursor)
	y := r.Y + (r.H-1)/2

	st := styleCursor
	if cell := dst.GetCell(r.X, y); cell.Style.BG != platformcore.ColorDefault {
		st = st.WithBG(cell.Style.BG)
	}
	dst.SetStyled(r.X, y, '[', st)
	dst.SetStyled(r.Right()-1, y, ']', st)
}

func (g *Game) renderOverlays(dst *platformcore.Screen) {
	switch {
	case g.paused:
		g.drawOverlay(dst, "PAUSED", "Press P to resume")
	case g.session.Status() == core.StatusCleared:
		bonus := fmt.Sprintf("Time bonus %d  Score %d", g.session.TimeRemaining(), g.score)
		g.drawOverlay(dst, "LEVEL CLEARED!", bonus, "Press N for the next level")
	case g.session.Status() == core.StatusTimeUp:
		final := fmt.Sprintf("Final score %d", g.score)
		g.drawOverlay(dst, "TIME'S UP", final, "Press R to play again")
	}
}

// drawOverlay draws a centered box over the board.
func (g *Game) drawOverlay(dst *platformcore.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = platformcore.Max(maxLen, platformcore.TextWidth(line))
	}

	area := g.layout.boardRect().Centered(maxLen+4, len(lines)+2)
	dst.FillRect(area, ' ', styleOverlay)
	dst.DrawBox(area, styleOverlay)
	for i, line := range lines {
		x := area.X + (area.W-platformcore.TextWidth(line))/2
		dst.DrawTextStyled(x, area.Y+1+i, line, styleOverlay)
	}
}
