package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/pairlink/internal/games/pairlink/core"
)

type recorder struct {
	events []core.Event
}

func (r *recorder) listen(ev core.Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) kinds() []core.EventKind {
	kinds := make([]core.EventKind, len(r.events))
	for i, ev := range r.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

func newTestSession(t *testing.T, timeRemaining int, rows ...string) (*core.Session, *core.VirtualClock, *recorder) {
	t.Helper()
	clock := core.NewVirtualClock()
	rec := &recorder{}
	s := core.NewSessionFromGrid(mustParse(t, rows...), timeRemaining, core.Options{
		Rand:      rand.New(rand.NewSource(1)),
		Scheduler: clock,
		Listener:  rec.listen,
	})
	return s, clock, rec
}

func TestSessionTwoByTwoScenario(t *testing.T) {
	s, clock, _ := newTestSession(t, 60, "AA", "BB")

	ev := s.SelectCell(core.P(1, 1))
	if ev.Kind != core.EventSelectionChanged || !ev.Selected {
		t.Fatalf("expected selection set, got %+v", ev)
	}
	if s.TilesRemaining() != 4 {
		t.Fatalf("selection should not remove tiles")
	}

	ev = s.SelectCell(core.P(1, 2))
	if ev.Kind != core.EventPathFound {
		t.Fatalf("expected path found, got %v", ev.Kind)
	}
	if core.Turns(ev.Path) != 0 || len(ev.Path) != 2 {
		t.Errorf("expected straight 1-step path, got %v", ev.Path)
	}
	if s.Status() != core.StatusAwaitingResolution {
		t.Errorf("expected awaiting resolution, got %v", s.Status())
	}
	if s.TilesRemaining() != 4 {
		t.Error("tiles must stay until resolution")
	}

	clock.Advance(core.DefaultResolveDelay)

	if s.Cell(core.P(1, 1)).Filled || s.Cell(core.P(1, 2)).Filled {
		t.Error("expected matched cells to be empty")
	}
	if s.Status() != core.StatusPlaying {
		t.Errorf("expected playing, got %v", s.Status())
	}
	if !core.HasAnyMove(s.Grid()) {
		t.Error("expected B pair to remain playable")
	}
	if s.PendingPath() != nil {
		t.Error("pending path should be cleared")
	}

	s.SelectCell(core.P(2, 1))
	if ev := s.SelectCell(core.P(2, 2)); ev.Kind != core.EventPathFound {
		t.Fatalf("expected path found, got %v", ev.Kind)
	}
	clock.Advance(core.DefaultResolveDelay)

	if s.Status() != core.StatusCleared {
		t.Errorf("expected cleared, got %v", s.Status())
	}
	if !s.Grid().IsCleared() {
		t.Error("expected empty board")
	}
	if s.Stats().PairsRemoved != 2 {
		t.Errorf("expected 2 pairs removed, got %d", s.Stats().PairsRemoved)
	}
}

func TestSessionEventOrder(t *testing.T) {
	s, clock, rec := newTestSession(t, 60, "AA", "BB")

	s.SelectCell(core.P(2, 1))
	s.SelectCell(core.P(2, 2))
	clock.Advance(core.DefaultResolveDelay)
	s.SelectCell(core.P(1, 1))
	s.SelectCell(core.P(1, 2))
	clock.Advance(core.DefaultResolveDelay)

	want := []core.EventKind{
		core.EventSelectionChanged,
		core.EventPathFound,
		core.EventMatched,
		core.EventSelectionChanged,
		core.EventPathFound,
		core.EventMatched,
		core.EventCleared,
	}
	got := rec.kinds()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if msg := rec.events[len(rec.events)-1].Message(); msg != "Level cleared!" {
		t.Errorf("unexpected cleared message %q", msg)
	}
}

func TestSessionInputLockedWhileAwaiting(t *testing.T) {
	s, clock, _ := newTestSession(t, 60, "AA", "BB")

	s.SelectCell(core.P(1, 1))
	s.SelectCell(core.P(1, 2))

	for _, p := range []core.Pos{core.P(2, 1), core.P(1, 1), core.P(0, 0)} {
		if ev := s.SelectCell(p); ev.Kind != core.EventIgnored {
			t.Errorf("select %v while awaiting: expected ignored, got %v", p, ev.Kind)
		}
	}
	if _, ok := s.Selection(); ok {
		t.Error("selection must not change while awaiting")
	}
	if ev := s.ForceShuffle(); ev.Kind != core.EventIgnored {
		t.Errorf("shuffle while awaiting: expected ignored, got %v", ev.Kind)
	}

	clock.Advance(core.DefaultResolveDelay)
	if s.TilesRemaining() != 2 {
		t.Errorf("expected 2 tiles after resolution, got %d", s.TilesRemaining())
	}
}

func TestSessionTimerScenario(t *testing.T) {
	s, _, rec := newTestSession(t, 1, "AA", "BB")

	ev := s.Tick()
	if ev.Kind != core.EventTimeUp {
		t.Fatalf("expected time up, got %v", ev.Kind)
	}
	if s.TimeRemaining() != 0 || s.Status() != core.StatusTimeUp {
		t.Errorf("expected 0s and TimeUp, got %ds %v", s.TimeRemaining(), s.Status())
	}
	if ev.Message() != "Time's up! Tap restart to try again." {
		t.Errorf("unexpected message %q", ev.Message())
	}

	before := len(rec.events)
	if ev := s.SelectCell(core.P(1, 1)); ev.Kind != core.EventIgnored {
		t.Errorf("expected select ignored after time up, got %v", ev.Kind)
	}
	if ev := s.Tick(); ev.Kind != core.EventIgnored {
		t.Errorf("expected tick ignored after time up, got %v", ev.Kind)
	}
	if _, ok := s.Selection(); ok {
		t.Error("selection should stay empty")
	}
	if s.TimeRemaining() != 0 {
		t.Errorf("timer went below zero: %d", s.TimeRemaining())
	}
	if len(rec.events) != before {
		t.Error("ignored input should not reach the listener")
	}
}

func TestSessionTickCountsDown(t *testing.T) {
	s, _, _ := newTestSession(t, 3, "AA")

	for want := 2; want > 0; want-- {
		ev := s.Tick()
		if ev.Kind != core.EventTick || ev.TimeRemaining != want {
			t.Fatalf("expected tick with %ds, got %v %ds", want, ev.Kind, ev.TimeRemaining)
		}
	}
	if ev := s.Tick(); ev.Kind != core.EventTimeUp {
		t.Errorf("expected time up, got %v", ev.Kind)
	}
}

func TestSessionTimeUpCancelsPendingRemoval(t *testing.T) {
	s, clock, _ := newTestSession(t, 1, "AA", "BB")

	s.SelectCell(core.P(1, 1))
	s.SelectCell(core.P(1, 2))
	s.Tick()

	if clock.Pending() != 0 {
		t.Errorf("expected pending removal cancelled, %d actions left", clock.Pending())
	}
	clock.Advance(core.DefaultResolveDelay)

	if s.TilesRemaining() != 4 {
		t.Errorf("expected no removal after time up, got %d tiles", s.TilesRemaining())
	}
	if s.Status() != core.StatusTimeUp {
		t.Errorf("expected TimeUp, got %v", s.Status())
	}
}

func TestSessionSelectSameCellTwice(t *testing.T) {
	s, clock, _ := newTestSession(t, 60, "AA", "BB")

	s.SelectCell(core.P(1, 1))
	ev := s.SelectCell(core.P(1, 1))
	if ev.Kind != core.EventSelectionChanged || ev.Selected {
		t.Errorf("expected selection cleared, got %+v", ev)
	}
	if _, ok := s.Selection(); ok {
		t.Error("selection should be cleared")
	}
	if s.PendingPath() != nil {
		t.Error("no path should be pending")
	}

	clock.Advance(core.DefaultResolveDelay)
	if s.TilesRemaining() != 4 {
		t.Errorf("expected no removal, got %d tiles", s.TilesRemaining())
	}
}

func TestSessionNoMatchReasons(t *testing.T) {
	testCases := []struct {
		name    string
		a, b    core.Pos
		reason  core.NoMatchReason
		message string
	}{
		{"mismatch", core.P(1, 1), core.P(1, 2), core.ReasonSymbolMismatch, "Tiles must match. Try again!"},
		{"no path", core.P(1, 1), core.P(2, 2), core.ReasonNoPath, "No link path with ≤2 turns."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, _, _ := newTestSession(t, 60, "AB", "BA")

			s.SelectCell(tc.a)
			ev := s.SelectCell(tc.b)
			if ev.Kind != core.EventNoMatch || ev.Reason != tc.reason {
				t.Fatalf("expected no match (%v), got %v (%v)", tc.reason, ev.Kind, ev.Reason)
			}
			if ev.Message() != tc.message {
				t.Errorf("expected message %q, got %q", tc.message, ev.Message())
			}
			if _, ok := s.Selection(); ok {
				t.Error("selection should be cleared after a failed attempt")
			}
			if s.Status() != core.StatusPlaying || s.TilesRemaining() != 4 {
				t.Error("failed attempt must not change the board")
			}
		})
	}
}

func TestSessionInvalidClickClearsSelection(t *testing.T) {
	testCases := []struct {
		name string
		pos  core.Pos
	}{
		{"empty cell", core.P(1, 2)},
		{"border", core.P(0, 1)},
		{"outside", core.P(10, 10)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, _, _ := newTestSession(t, 60, "A.", ".A")

			s.SelectCell(core.P(1, 1))
			ev := s.SelectCell(tc.pos)
			if ev.Kind != core.EventSelectionChanged || ev.Selected {
				t.Errorf("expected selection cleared, got %+v", ev)
			}
		})
	}
}

func TestSessionAutoShuffleWhenStuck(t *testing.T) {
	// After the C pair goes, only the crossed A/B diagonals remain
	s, clock, rec := newTestSession(t, 60,
		"AB",
		"BA",
		"CC",
	)

	s.SelectCell(core.P(3, 1))
	s.SelectCell(core.P(3, 2))
	clock.Advance(core.DefaultResolveDelay)

	last := rec.events[len(rec.events)-1]
	if last.Kind != core.EventShuffled {
		t.Fatalf("expected shuffle after removal, got %v", last.Kind)
	}
	if last.Message() != "No moves left, shuffling tiles." {
		t.Errorf("unexpected message %q", last.Message())
	}
	if !core.HasAnyMove(s.Grid()) {
		t.Error("expected playable board after auto shuffle")
	}
	if s.Status() != core.StatusPlaying {
		t.Errorf("expected playing, got %v", s.Status())
	}
	if s.Stats().Shuffles != 1 {
		t.Errorf("expected 1 shuffle, got %d", s.Stats().Shuffles)
	}
}

func TestSessionForceShuffle(t *testing.T) {
	s, _, _ := newTestSession(t, 60, "AB.", ".BA")
	before := tileMultiset(s.Grid())
	occupied := s.Grid().Occupied()

	s.SelectCell(core.P(1, 1))
	ev := s.ForceShuffle()
	if ev.Kind != core.EventShuffled || !ev.Manual {
		t.Fatalf("expected manual shuffle, got %+v", ev)
	}
	if ev.Message() != "" {
		t.Errorf("manual shuffle should not change the status line, got %q", ev.Message())
	}
	if _, ok := s.Selection(); ok {
		t.Error("shuffle should clear selection")
	}

	after := tileMultiset(s.Grid())
	for tile, n := range before {
		if after[tile] != n {
			t.Errorf("tile %v count changed", tile)
		}
	}
	if got := s.Grid().Occupied(); !samePath(got, occupied) {
		t.Errorf("occupied positions changed: %v -> %v", occupied, got)
	}
}

func TestSessionDeadlockIsReported(t *testing.T) {
	s, clock, rec := newTestSession(t, 60, "A.", "..")

	ev := s.ForceShuffle()
	if ev.Kind != core.EventDeadlock || !ev.Manual {
		t.Fatalf("expected manual deadlock event, got %+v", ev)
	}
	if ev.Message() != "No moves possible. Restart the level." {
		t.Errorf("unexpected deadlock message %q", ev.Message())
	}
	if s.Status() != core.StatusPlaying {
		t.Errorf("deadlock should leave the level in play, got %v", s.Status())
	}
	if s.TilesRemaining() != 1 || s.Stats().Shuffles != 1 {
		t.Errorf("expected 1 tile and 1 shuffle, got %d tiles, %d shuffles", s.TilesRemaining(), s.Stats().Shuffles)
	}
	if len(rec.events) == 0 || rec.events[len(rec.events)-1].Kind != core.EventDeadlock {
		t.Errorf("listener missed the deadlock: %v", rec.kinds())
	}

	res := s.Autoplay(10, clock)
	if !res.Deadlock || res.Cleared || res.Moves != 0 {
		t.Errorf("expected autoplay to stop on deadlock, got %+v", res)
	}
}

func TestSessionNilSchedulerResolvesImmediately(t *testing.T) {
	s := core.NewSessionFromGrid(mustParse(t, "AA", "BB"), 60, core.Options{
		Rand: rand.New(rand.NewSource(1)),
	})

	s.SelectCell(core.P(1, 1))
	if ev := s.SelectCell(core.P(1, 2)); ev.Kind != core.EventPathFound {
		t.Fatalf("expected path found, got %v", ev.Kind)
	}
	if s.Status() != core.StatusPlaying || s.TilesRemaining() != 2 {
		t.Errorf("expected immediate removal, got %v with %d tiles", s.Status(), s.TilesRemaining())
	}
}

func TestNewSessionBuildsLevel(t *testing.T) {
	table := core.DefaultLevelTable()

	for i := range table.Levels {
		s, err := core.NewSession(i, core.Options{Rand: rand.New(rand.NewSource(int64(i)))})
		if err != nil {
			t.Fatalf("level %d: NewSession failed: %v", i+1, err)
		}
		level := table.Settings(i)

		if s.Level() != level {
			t.Errorf("level %d: expected %+v, got %+v", i+1, level, s.Level())
		}
		if s.TimeRemaining() != level.Time {
			t.Errorf("level %d: expected %ds, got %ds", i+1, level.Time, s.TimeRemaining())
		}
		if s.TilesRemaining() != level.Rows*level.Cols {
			t.Errorf("level %d: expected %d tiles, got %d", i+1, level.Rows*level.Cols, s.TilesRemaining())
		}
		if s.Rows() != level.Rows || s.Cols() != level.Cols {
			t.Errorf("level %d: expected %dx%d board, got %dx%d", i+1, level.Rows, level.Cols, s.Rows(), s.Cols())
		}
		for sym, n := range s.Grid().SymbolCounts() {
			if level.Pairs() <= core.SymbolCount && n != 2 {
				t.Errorf("level %d: symbol %d appears %d times", i+1, sym, n)
			}
		}
		if !core.HasAnyMove(s.Grid()) {
			t.Errorf("level %d: new board has no move", i+1)
		}
	}
}

func TestNewSessionRejectsOddLevel(t *testing.T) {
	opts := core.Options{
		Levels: core.LevelTable{
			Levels:  []core.LevelSettings{{Cols: 3, Rows: 3, Time: 120}},
			MinTime: 90,
		},
	}

	if _, err := core.NewSession(0, opts); !errors.Is(err, core.ErrOddTileCount) {
		t.Errorf("expected ErrOddTileCount, got %v", err)
	}
}

func TestSessionRestartCancelsPending(t *testing.T) {
	clock := core.NewVirtualClock()
	s, err := core.NewSession(0, core.Options{
		Rand:      rand.New(rand.NewSource(3)),
		Scheduler: clock,
	})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	move, ok := s.Hint()
	if !ok {
		t.Fatal("expected a hint")
	}
	s.SelectCell(move.A)
	s.SelectCell(move.B)
	if s.Status() != core.StatusAwaitingResolution {
		t.Fatalf("expected awaiting resolution, got %v", s.Status())
	}

	if err := s.Restart(0); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	if clock.Pending() != 0 {
		t.Errorf("expected pending removal cancelled, %d left", clock.Pending())
	}

	clock.Advance(core.DefaultResolveDelay)
	if s.TilesRemaining() != 48 {
		t.Errorf("stale removal touched the new board: %d tiles", s.TilesRemaining())
	}
	if s.Status() != core.StatusPlaying || s.PendingPath() != nil {
		t.Error("expected a fresh playing board")
	}
}

func TestSessionNextLevel(t *testing.T) {
	s, err := core.NewSession(0, core.Options{Rand: rand.New(rand.NewSource(5))})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	if err := s.NextLevel(); !errors.Is(err, core.ErrLevelNotCleared) {
		t.Errorf("expected ErrLevelNotCleared, got %v", err)
	}

	res := s.Autoplay(1000, nil)
	if !res.Cleared {
		t.Fatalf("autoplay did not clear the board: %+v", res)
	}

	if err := s.NextLevel(); err != nil {
		t.Fatalf("NextLevel failed: %v", err)
	}
	if s.LevelIndex() != 1 {
		t.Errorf("expected level index 1, got %d", s.LevelIndex())
	}
	if s.Level() != core.DefaultLevelTable().Settings(1) {
		t.Errorf("unexpected level settings %+v", s.Level())
	}
	if s.Status() != core.StatusPlaying || s.Stats().PairsRemoved != 0 {
		t.Errorf("expected fresh playing level, got %v %+v", s.Status(), s.Stats())
	}
}

func TestSessionTeardown(t *testing.T) {
	s, clock, _ := newTestSession(t, 60, "AA", "BB")

	s.SelectCell(core.P(1, 1))
	s.SelectCell(core.P(1, 2))
	s.Teardown()

	clock.Advance(core.DefaultResolveDelay)
	if s.TilesRemaining() != 4 {
		t.Error("torn down session must not resolve")
	}
	if ev := s.SelectCell(core.P(2, 1)); ev.Kind != core.EventIgnored {
		t.Errorf("expected ignored after teardown, got %v", ev.Kind)
	}
	if ev := s.Tick(); ev.Kind != core.EventIgnored {
		t.Errorf("expected tick ignored after teardown, got %v", ev.Kind)
	}
	if _, ok := s.Hint(); ok {
		t.Error("expected no hint after teardown")
	}
}

func TestSessionDeterministic(t *testing.T) {
	run := func() core.Snapshot {
		clock := core.NewVirtualClock()
		s, err := core.NewSession(2, core.Options{
			Rand:      rand.New(rand.NewSource(12345)),
			Scheduler: clock,
		})
		if err != nil {
			t.Fatalf("NewSession failed: %v", err)
		}
		s.Autoplay(10, clock)
		s.Tick()
		s.ForceShuffle()
		return s.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Error("hashes differ")
	}
	if a.Tiles != 60-20 {
		t.Errorf("expected 40 tiles after 10 moves, got %d", a.Tiles)
	}
}
