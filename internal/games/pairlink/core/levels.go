package core

import "fmt"

// LevelSettings defines the board size and time budget of a level.
type LevelSettings struct {
	Cols int
	Rows int
	Time int // Time budget in seconds
}

// Pairs returns the number of tile pairs on a full board.
func (l LevelSettings) Pairs() int {
	return l.Cols * l.Rows / 2
}

// LevelTable is an ordered list of level settings, cycled with a time discount.
type LevelTable struct {
	Levels        []LevelSettings
	CycleDiscount int // Seconds removed per completed cycle through Levels
	MinTime       int // Floor for the discounted time budget
}

// DefaultLevelTable returns the built-in level progression.
func DefaultLevelTable() LevelTable {
	return LevelTable{
		Levels: []LevelSettings{
			{Cols: 8, Rows: 6, Time: 180},
			{Cols: 8, Rows: 8, Time: 180},
			{Cols: 10, Rows: 6, Time: 170},
			{Cols: 10, Rows: 8, Time: 160},
			{Cols: 12, Rows: 8, Time: 150},
			{Cols: 12, Rows: 10, Time: 150},
		},
		CycleDiscount: 10,
		MinTime:       90,
	}
}

// Settings returns the settings for a 0-based level index.
// The table repeats; each completed cycle lowers the time budget by CycleDiscount,
// never below MinTime. Negative indices are treated as 0.
func (t LevelTable) Settings(index int) LevelSettings {
	if index < 0 {
		index = 0
	}
	n := len(t.Levels)
	s := t.Levels[index%n]

	cycle := index / n
	time := s.Time - cycle*t.CycleDiscount
	if time < t.MinTime {
		time = t.MinTime
	}
	s.Time = time
	return s
}

// Validate checks that every level can be built.
func (t LevelTable) Validate() error {
	if len(t.Levels) == 0 {
		return ErrEmptyLevelTable
	}
	for i, l := range t.Levels {
		if l.Cols <= 0 || l.Rows <= 0 {
			return fmt.Errorf("level %d: %dx%d: %w", i+1, l.Cols, l.Rows, ErrInvalidDimensions)
		}
		if (l.Cols*l.Rows)%2 != 0 {
			return fmt.Errorf("level %d: %dx%d: %w", i+1, l.Cols, l.Rows, ErrOddTileCount)
		}
		if l.Time <= 0 {
			return fmt.Errorf("level %d: time budget must be positive, got %d", i+1, l.Time)
		}
	}
	if t.CycleDiscount < 0 {
		return fmt.Errorf("cycle discount must not be negative, got %d", t.CycleDiscount)
	}
	if t.MinTime <= 0 {
		return fmt.Errorf("minimum time must be positive, got %d", t.MinTime)
	}
	return nil
}
