package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/pairlink/internal/games/pairlink/core"
)

func TestLevelTableSettings(t *testing.T) {
	table := core.DefaultLevelTable()

	testCases := []struct {
		index int
		want  core.LevelSettings
	}{
		{0, core.LevelSettings{Cols: 8, Rows: 6, Time: 180}},
		{1, core.LevelSettings{Cols: 8, Rows: 8, Time: 180}},
		{5, core.LevelSettings{Cols: 12, Rows: 10, Time: 150}},
		{6, core.LevelSettings{Cols: 8, Rows: 6, Time: 170}},
		{11, core.LevelSettings{Cols: 12, Rows: 10, Time: 140}},
		{12, core.LevelSettings{Cols: 8, Rows: 6, Time: 160}},
		{54, core.LevelSettings{Cols: 8, Rows: 6, Time: 90}},
		{59, core.LevelSettings{Cols: 12, Rows: 10, Time: 90}},
		{600, core.LevelSettings{Cols: 8, Rows: 6, Time: 90}},
		{-4, core.LevelSettings{Cols: 8, Rows: 6, Time: 180}},
	}

	for _, tc := range testCases {
		if got := table.Settings(tc.index); got != tc.want {
			t.Errorf("Settings(%d): expected %+v, got %+v", tc.index, tc.want, got)
		}
	}
}

func TestLevelTableValidate(t *testing.T) {
	if err := core.DefaultLevelTable().Validate(); err != nil {
		t.Fatalf("default table invalid: %v", err)
	}

	testCases := []struct {
		name  string
		table core.LevelTable
		want  error
	}{
		{"empty", core.LevelTable{MinTime: 90}, core.ErrEmptyLevelTable},
		{"odd", core.LevelTable{Levels: []core.LevelSettings{{Cols: 3, Rows: 3, Time: 100}}, MinTime: 90}, core.ErrOddTileCount},
		{"zero size", core.LevelTable{Levels: []core.LevelSettings{{Cols: 0, Rows: 4, Time: 100}}, MinTime: 90}, core.ErrInvalidDimensions},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.table.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}

	bad := core.DefaultLevelTable()
	bad.Levels[2].Time = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero time budget")
	}
}
