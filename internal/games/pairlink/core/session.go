package core

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrLevelNotCleared is returned by NextLevel when the current level is still in progress.
var ErrLevelNotCleared = errors.New("level is not cleared")

// DefaultResolveDelay is the time a validated path stays highlighted before removal.
const DefaultResolveDelay = 160 * time.Millisecond

// Status represents the session state.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusAwaitingResolution
	StatusCleared
	StatusTimeUp
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusAwaitingResolution:
		return "awaiting_resolution"
	case StatusCleared:
		return "cleared"
	case StatusTimeUp:
		return "time_up"
	default:
		return "unknown"
	}
}

// Options configures a Session. Zero values select the defaults.
type Options struct {
	// Rand drives tile generation and shuffles. Defaults to a time-seeded source.
	Rand *rand.Rand
	// Scheduler runs the deferred match resolution. If nil, matches resolve
	// immediately after the path is reported.
	Scheduler Scheduler
	// Levels is the level progression. Defaults to DefaultLevelTable.
	Levels LevelTable
	// Symbols is the pool tiles are drawn from. Defaults to DefaultSymbols.
	Symbols []Symbol
	// ResolveDelay defaults to DefaultResolveDelay.
	ResolveDelay time.Duration
	// ShuffleAttempts defaults to DefaultShuffleAttempts.
	ShuffleAttempts int
	// Listener receives every event except EventIgnored.
	Listener func(Event)
}

func (o Options) withDefaults() Options {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano())) //#nosec G404 -- game randomness
	}
	if len(o.Levels.Levels) == 0 {
		o.Levels = DefaultLevelTable()
	}
	if o.Symbols == nil {
		o.Symbols = DefaultSymbols()
	}
	if o.ResolveDelay <= 0 {
		o.ResolveDelay = DefaultResolveDelay
	}
	if o.ShuffleAttempts <= 0 {
		o.ShuffleAttempts = DefaultShuffleAttempts
	}
	return o
}

// Stats counts what happened during the current level.
type Stats struct {
	PairsRemoved int
	Mismatches   int // Attempts rejected for differing symbols
	NoPaths      int // Attempts rejected for lack of a route
	Shuffles     int // Automatic and manual shuffles
}

// Session owns one level of play: the grid, selection, pending match, and timer.
// A Session is not safe for concurrent use; the host drives it from one goroutine.
type Session struct {
	opts Options

	levelIndex int
	level      LevelSettings
	grid       *Grid

	selection    Pos
	hasSelection bool

	pendingA    Pos
	pendingB    Pos
	pendingPath []Pos
	stopPending func() bool

	timeRemaining int
	status        Status
	stats         Stats
	tornDown      bool

	// generation invalidates deferred actions scheduled for an earlier board.
	generation uint64
}

// NewSession creates a session at the given 0-based level index.
func NewSession(levelIndex int, opts Options) (*Session, error) {
	opts = opts.withDefaults()
	if err := opts.Levels.Validate(); err != nil {
		return nil, err
	}
	if len(opts.Symbols) == 0 {
		return nil, ErrSymbolPoolEmpty
	}

	s := &Session{opts: opts}
	if err := s.Restart(levelIndex); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSessionFromGrid creates a playing session over a prepared grid.
// The grid is used as is (no shuffle) and the timer starts at timeRemaining.
func NewSessionFromGrid(g *Grid, timeRemaining int, opts Options) *Session {
	opts = opts.withDefaults()
	return &Session{
		opts:          opts,
		level:         LevelSettings{Cols: g.Cols(), Rows: g.Rows(), Time: timeRemaining},
		grid:          g,
		timeRemaining: timeRemaining,
		status:        StatusPlaying,
	}
}

// Restart cancels any pending action and starts a fresh board for levelIndex.
func (s *Session) Restart(levelIndex int) error {
	if levelIndex < 0 {
		levelIndex = 0
	}
	level := s.opts.Levels.Settings(levelIndex)

	g, err := BuildGrid(level.Rows, level.Cols, s.opts.Symbols, s.opts.Rand)
	if err != nil {
		return fmt.Errorf("level %d: %w", levelIndex+1, err)
	}

	s.cancelPending()
	s.generation++
	s.tornDown = false

	s.levelIndex = levelIndex
	s.level = level
	s.grid = g
	s.clearSelection()
	s.timeRemaining = level.Time
	s.status = StatusPlaying
	s.stats = Stats{}

	s.emit(s.event(EventLevelStarted))

	if !HasAnyMove(s.grid) {
		s.shuffle(false)
	}
	return nil
}

// NextLevel advances to the following level. Only valid once the board is cleared.
func (s *Session) NextLevel() error {
	if s.tornDown || s.status != StatusCleared {
		return ErrLevelNotCleared
	}
	return s.Restart(s.levelIndex + 1)
}

// Teardown cancels pending work. Every later operation except Restart is ignored.
func (s *Session) Teardown() {
	s.cancelPending()
	s.generation++
	s.tornDown = true
}

// SelectCell handles a click on pos.
func (s *Session) SelectCell(pos Pos) Event {
	if s.tornDown || s.status != StatusPlaying {
		return s.ignored()
	}

	if !s.grid.IsPlayable(pos) || s.grid.IsEmpty(pos) {
		s.clearSelection()
		return s.emit(s.event(EventSelectionChanged))
	}

	if !s.hasSelection {
		s.selection = pos
		s.hasSelection = true
		return s.emit(s.event(EventSelectionChanged))
	}

	if s.selection == pos {
		s.clearSelection()
		return s.emit(s.event(EventSelectionChanged))
	}

	return s.attemptMatch(s.selection, pos)
}

func (s *Session) attemptMatch(a, b Pos) Event {
	s.clearSelection()

	ev := s.event(EventNoMatch)
	ev.A, ev.B = a, b

	if !s.grid.Get(a).Tile.Matches(s.grid.Get(b).Tile) {
		s.stats.Mismatches++
		ev.Reason = ReasonSymbolMismatch
		return s.emit(ev)
	}

	path, ok := FindPath(s.grid, a, b)
	if !ok {
		s.stats.NoPaths++
		ev.Reason = ReasonNoPath
		return s.emit(ev)
	}

	s.status = StatusAwaitingResolution
	s.pendingA, s.pendingB = a, b
	s.pendingPath = path

	ev = s.event(EventPathFound)
	ev.A, ev.B = a, b
	ev.Path = clonePath(path)
	s.emit(ev)

	gen := s.generation
	if s.opts.Scheduler == nil {
		s.resolve(gen)
		return ev
	}
	s.stopPending = s.opts.Scheduler.AfterFunc(s.opts.ResolveDelay, func() {
		s.resolve(gen)
	})
	return ev
}

// resolve removes the pending pair. Stale callbacks from an earlier board are dropped.
func (s *Session) resolve(gen uint64) {
	if gen != s.generation || s.status != StatusAwaitingResolution {
		return
	}
	a, b := s.pendingA, s.pendingB

	s.grid.Clear(a)
	s.grid.Clear(b)
	s.stopPending = nil
	s.pendingPath = nil
	s.clearSelection()
	s.status = StatusPlaying
	s.stats.PairsRemoved++

	ev := s.event(EventMatched)
	ev.A, ev.B = a, b
	s.emit(ev)

	s.evaluateBoard()
}

func (s *Session) evaluateBoard() {
	if s.grid.IsCleared() {
		s.status = StatusCleared
		s.emit(s.event(EventCleared))
		return
	}
	if !HasAnyMove(s.grid) {
		s.shuffle(false)
	}
}

// Tick advances the countdown by one second. The host calls it at 1 Hz.
func (s *Session) Tick() Event {
	if s.tornDown || (s.status != StatusPlaying && s.status != StatusAwaitingResolution) {
		return s.ignored()
	}

	s.timeRemaining--
	if s.timeRemaining > 0 {
		return s.emit(s.event(EventTick))
	}

	s.timeRemaining = 0
	s.cancelPending()
	s.generation++
	s.clearSelection()
	s.status = StatusTimeUp
	return s.emit(s.event(EventTimeUp))
}

// ForceShuffle redistributes the remaining tiles on request.
// Selection and any highlighted path are cleared.
func (s *Session) ForceShuffle() Event {
	if s.tornDown || s.status != StatusPlaying {
		return s.ignored()
	}
	s.clearSelection()
	return s.shuffle(true)
}

func (s *Session) shuffle(manual bool) Event {
	res, err := Shuffle(s.grid, s.opts.Rand, s.opts.ShuffleAttempts)
	s.stats.Shuffles++

	kind := EventShuffled
	if errors.Is(err, ErrDeadlock) {
		kind = EventDeadlock
	}
	ev := s.event(kind)
	ev.Shuffle = res
	ev.Manual = manual
	return s.emit(ev)
}

// Hint returns the first legal move, if any, while the session is playing.
func (s *Session) Hint() (Move, bool) {
	if s.tornDown || s.status != StatusPlaying {
		return Move{}, false
	}
	return FindMove(s.grid)
}

// Grid returns a copy of the current board.
func (s *Session) Grid() *Grid {
	return s.grid.Clone()
}

// Cell returns the cell at pos, or an empty cell if pos is outside the bordered extent.
func (s *Session) Cell(pos Pos) Cell {
	if !s.grid.InBounds(pos) {
		return Empty()
	}
	return s.grid.Get(pos)
}

// Rows returns the number of playable rows.
func (s *Session) Rows() int {
	return s.grid.Rows()
}

// Cols returns the number of playable columns.
func (s *Session) Cols() int {
	return s.grid.Cols()
}

// Selection returns the selected position, if any.
func (s *Session) Selection() (Pos, bool) {
	return s.selection, s.hasSelection
}

// PendingPath returns the highlighted route of the pending match, or nil.
func (s *Session) PendingPath() []Pos {
	return clonePath(s.pendingPath)
}

// TimeRemaining returns the seconds left on the level timer.
func (s *Session) TimeRemaining() int {
	return s.timeRemaining
}

// LevelIndex returns the 0-based level index.
func (s *Session) LevelIndex() int {
	return s.levelIndex
}

// Level returns the settings of the current level.
func (s *Session) Level() LevelSettings {
	return s.level
}

// Status returns the session status.
func (s *Session) Status() Status {
	return s.status
}

// Stats returns the counters for the current level.
func (s *Session) Stats() Stats {
	return s.stats
}

// TilesRemaining returns the number of tiles left on the board.
func (s *Session) TilesRemaining() int {
	return s.grid.TileCount()
}

func (s *Session) clearSelection() {
	s.selection = Pos{}
	s.hasSelection = false
}

func (s *Session) cancelPending() {
	if s.stopPending != nil {
		s.stopPending()
		s.stopPending = nil
	}
	s.pendingPath = nil
	if s.status == StatusAwaitingResolution {
		s.status = StatusPlaying
	}
}

func (s *Session) event(kind EventKind) Event {
	return Event{
		Kind:          kind,
		Selection:     s.selection,
		Selected:      s.hasSelection,
		LevelIndex:    s.levelIndex,
		TimeRemaining: s.timeRemaining,
	}
}

func (s *Session) emit(ev Event) Event {
	if s.opts.Listener != nil {
		s.opts.Listener(ev)
	}
	return ev
}

func (s *Session) ignored() Event {
	return s.event(EventIgnored)
}

func clonePath(path []Pos) []Pos {
	if path == nil {
		return nil
	}
	out := make([]Pos, len(path))
	copy(out, path)
	return out
}
