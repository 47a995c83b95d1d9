package core

// Symbol identifies a matchable tile kind. Two tiles match iff their symbols are equal.
type Symbol uint8

// SymbolCount is the size of the built-in symbol pool.
const SymbolCount = 50

// ColorSlots is the number of cosmetic tile color slots.
const ColorSlots = 9

var symbolGlyphs = [SymbolCount]rune{
	'🐶', '🐱', '🐭', '🐹', '🐰', '🦊', '🐻', '🐼', '🐨', '🐯',
	'🦁', '🐮', '🐷', '🐸', '🐵', '🐔', '🐧', '🐦', '🐤', '🐣',
	'🦆', '🦉', '🐺', '🦄', '🐝', '🐛', '🦋', '🐌', '🐞', '🐢',
	'🐍', '🐙', '🐠', '🐳', '🐬', '🦀', '🦞', '🦐', '🐊', '🦓',
	'🦒', '🐘', '🦛', '🐪', '🦘', '🦥', '🐿', '🐉', '🐲', '🦕',
}

const symbolChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwx"

// Glyph returns the emoji used to draw the symbol. Emoji occupy two terminal columns.
func (s Symbol) Glyph() rune {
	if int(s) >= SymbolCount {
		return '?'
	}
	return symbolGlyphs[s]
}

// Char returns a single ASCII character for terminals without emoji support.
func (s Symbol) Char() rune {
	if int(s) >= SymbolCount {
		return '?'
	}
	return rune(symbolChars[s])
}

// DefaultSymbols returns the full built-in symbol pool.
func DefaultSymbols() []Symbol {
	return SymbolPool(SymbolCount)
}

// SymbolPool returns the first n symbols of the built-in pool.
// n is clamped to [0, SymbolCount].
func SymbolPool(n int) []Symbol {
	if n < 0 {
		n = 0
	}
	if n > SymbolCount {
		n = SymbolCount
	}
	pool := make([]Symbol, n)
	for i := range pool {
		pool[i] = Symbol(i)
	}
	return pool
}

// Tile is an immutable tile placed on the grid.
type Tile struct {
	Symbol    Symbol
	ColorSlot int // Cosmetic only, in [0, ColorSlots)
}

// Matches returns true if both tiles carry the same symbol.
func (t Tile) Matches(other Tile) bool {
	return t.Symbol == other.Symbol
}
