package core

// Color represents a terminal color for a screen cell.
// Maps to ANSI 256-color codes in the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorTeal
	ColorSlate
	ColorBlack
)

// Style describes how a cell is drawn.
// The zero Style uses the terminal's default colors.
type Style struct {
	FG   Color
	BG   Color
	Bold bool
}

// Fg returns a style with only a foreground color.
func Fg(c Color) Style {
	return Style{FG: c}
}

// WithBG returns a copy of the style with the given background.
func (s Style) WithBG(c Color) Style {
	s.BG = c
	return s
}

// WithBold returns a copy of the style in bold.
func (s Style) WithBold() Style {
	s.Bold = true
	return s
}
