package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/pairlink/internal/games/pairlink/core"
)

func TestNewGridRejectsInvalidDimensions(t *testing.T) {
	testCases := []struct {
		rows, cols int
	}{
		{0, 4},
		{4, 0},
		{-1, 2},
	}

	for _, tc := range testCases {
		if _, err := core.NewGrid(tc.rows, tc.cols); !errors.Is(err, core.ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d): expected ErrInvalidDimensions, got %v", tc.rows, tc.cols, err)
		}
	}
}

func TestGridBounds(t *testing.T) {
	g, err := core.NewGrid(2, 3)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	testCases := []struct {
		pos      core.Pos
		inBounds bool
		playable bool
	}{
		{core.P(0, 0), true, false},
		{core.P(1, 1), true, true},
		{core.P(2, 3), true, true},
		{core.P(3, 4), true, false},
		{core.P(1, 4), true, false},
		{core.P(3, 1), true, false},
		{core.P(-1, 0), false, false},
		{core.P(4, 0), false, false},
		{core.P(0, 5), false, false},
	}

	for _, tc := range testCases {
		if got := g.InBounds(tc.pos); got != tc.inBounds {
			t.Errorf("InBounds(%v): expected %v, got %v", tc.pos, tc.inBounds, got)
		}
		if got := g.IsPlayable(tc.pos); got != tc.playable {
			t.Errorf("IsPlayable(%v): expected %v, got %v", tc.pos, tc.playable, got)
		}
	}
}

func TestGridSetGetClear(t *testing.T) {
	g, _ := core.NewGrid(2, 2)
	tile := core.Tile{Symbol: 3, ColorSlot: 5}

	g.Set(core.P(1, 2), tile)

	cell := g.Get(core.P(1, 2))
	if !cell.Filled || cell.Tile != tile {
		t.Errorf("expected %v at (1,2), got %+v", tile, cell)
	}
	if g.TileCount() != 1 {
		t.Errorf("expected 1 tile, got %d", g.TileCount())
	}

	g.Clear(core.P(1, 2))
	if !g.IsEmpty(core.P(1, 2)) {
		t.Error("expected (1,2) to be empty after Clear")
	}
	if !g.IsCleared() {
		t.Error("expected grid to be cleared")
	}
}

func TestGridGetOutsideExtentPanics(t *testing.T) {
	g, _ := core.NewGrid(2, 2)

	defer func() {
		if recover() == nil {
			t.Error("expected Get outside the bordered extent to panic")
		}
	}()
	g.Get(core.P(4, 0))
}

func TestGridSetOnBorderPanics(t *testing.T) {
	g, _ := core.NewGrid(2, 2)

	for _, p := range []core.Pos{core.P(0, 1), core.P(1, 0), core.P(3, 1), core.P(1, 3)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected Set on border %v to panic", p)
				}
			}()
			g.Set(p, core.Tile{Symbol: 1})
		}()
	}

	// Border stays empty and readable
	if !g.IsEmpty(core.P(0, 0)) || g.Get(core.P(3, 3)).Filled {
		t.Error("border cells must stay empty")
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g, err := core.ParseGrid("AB", "BA")
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}

	clone := g.Clone()
	if !clone.Equal(g) {
		t.Fatal("clone should equal original")
	}

	clone.Clear(core.P(1, 1))
	if clone.Equal(g) {
		t.Error("modifying clone should not affect original")
	}
	if !g.Get(core.P(1, 1)).Filled {
		t.Error("original lost its tile")
	}
}

func TestGridOccupiedRowMajor(t *testing.T) {
	g, _ := core.ParseGrid("A.", ".A", "B.", "..", ".B")

	want := []core.Pos{core.P(1, 1), core.P(2, 2), core.P(3, 1), core.P(5, 2)}
	got := g.Occupied()
	if len(got) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestParseGridRejectsRaggedRows(t *testing.T) {
	if _, err := core.ParseGrid("AA", "A"); err == nil {
		t.Error("expected error for ragged rows")
	}
	if _, err := core.ParseGrid("A!"); err == nil {
		t.Error("expected error for unknown symbol")
	}
}

func TestRenderGridRoundTrip(t *testing.T) {
	rows := []string{"AB.", ".BA"}
	g, err := core.ParseGrid(rows...)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}

	if got := core.RenderGrid(g); got != "AB.\n.BA\n" {
		t.Errorf("unexpected render:\n%s", got)
	}
	if got := core.RenderGridCompact(g); got != "AB..BA" {
		t.Errorf("unexpected compact render %q", got)
	}
}

func TestFormatClock(t *testing.T) {
	testCases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{180, "03:00"},
		{95, "01:35"},
		{-3, "00:00"},
	}

	for _, tc := range testCases {
		if got := core.FormatClock(tc.seconds); got != tc.want {
			t.Errorf("FormatClock(%d): expected %s, got %s", tc.seconds, tc.want, got)
		}
	}
}
