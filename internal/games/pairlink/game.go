// Package pairlink provides the PairLink tile-matching puzzle for the terminal.
// It adapts the UI-agnostic session in the core subpackage to the platform's
// frame loop: cursor and mouse input, a 1 Hz timer derived from frames,
// scoring, and level outcome reporting.
package pairlink

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/pairlink/internal/config"
	platformcore "github.com/vovakirdan/pairlink/internal/core"
	"github.com/vovakirdan/pairlink/internal/games/pairlink/core"
)

// Scoring.
const (
	PointsPerPair = 10
)

// LevelOutcome describes how a level ended.
type LevelOutcome struct {
	RunID        string
	Level        int // 1-based
	Cleared      bool
	SecondsLeft  int
	PairsRemoved int
	Shuffles     int
	Score        int // Run score after the level
}

// Recorder receives level outcomes as they happen.
type Recorder interface {
	RecordLevel(o LevelOutcome)
}

// Options configures a Game.
type Options struct {
	Config     config.PairLinkConfig
	StartLevel int // 1-based, 0 starts at the first level
	Logger     *log.Logger
	Recorder   Recorder
}

// Game implements the PairLink puzzle on top of a core.Session.
type Game struct {
	opts Options
	log  *log.Logger

	session *core.Session
	clock   *core.VirtualClock
	err     error // Session could not be built

	runID      string
	frameDur   time.Duration
	tickRate   int
	frames     int // Frames since the last timer tick
	score      int
	levelScore int // Score when the current level started

	cursor  core.Pos
	hint    *core.Move
	message string
	paused  bool

	screenW int
	screenH int
	layout  layout
}

// New creates a PairLink game. Reset must be called before Step.
func New(opts Options) *Game {
	if len(opts.Config.Levels) == 0 {
		opts.Config = config.DefaultPairLinkConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		opts: opts,
		log:  logger,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pairlink"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "PairLink"
}

// Reset starts a new run at the configured start level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	if g.session != nil {
		g.session.Teardown()
	}

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.frameDur = time.Second / time.Duration(g.tickRate)
	g.frames = 0
	g.score = 0
	g.levelScore = 0
	g.paused = false
	g.hint = nil
	g.runID = uuid.NewString()
	g.clock = core.NewVirtualClock()

	start := g.opts.StartLevel - 1
	if start < 0 {
		start = 0
	}

	g.session = nil
	if err := g.opts.Config.Validate(); err != nil {
		g.err = fmt.Errorf("invalid config: %w", err)
	} else {
		g.session, g.err = core.NewSession(start, core.Options{
			Rand:            rand.New(rand.NewSource(cfg.Seed)), //#nosec G404 -- game randomness
			Scheduler:       g.clock,
			Levels:          g.opts.Config.LevelTable(),
			Symbols:         g.opts.Config.SymbolPool(),
			ResolveDelay:    g.opts.Config.ResolveDelay(),
			ShuffleAttempts: g.opts.Config.ShuffleAttempts,
			Listener:        g.onEvent,
		})
	}
	if g.err != nil {
		g.log.Error("cannot start level", "level", start+1, "err", g.err)
		g.message = g.err.Error()
	} else {
		g.log.Info("run started", "run", g.runID, "level", start+1, "seed", cfg.Seed)
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.session != nil {
		g.layout = computeLayout(w, h, g.session.Rows(), g.session.Cols())
	}
}

// Step advances the game by one frame.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.session == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && g.session.Status() != core.StatusTimeUp {
		g.paused = !g.paused
	}
	if g.paused || g.layout.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	// Deferred removals first, so input in this frame sees the resolved board.
	g.clock.Advance(g.frameDur)
	g.frames++
	if g.frames >= g.tickRate {
		g.frames = 0
		g.session.Tick()
	}

	switch g.session.Status() {
	case core.StatusCleared:
		if in.Has(platformcore.ActionNext) {
			g.nextLevel()
		}
		return platformcore.StepResult{State: g.State()}
	case core.StatusTimeUp:
		// The platform restarts the run.
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionRestart) {
		g.restartLevel()
		return platformcore.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	// Border clicks reach the session too and clear the selection.
	for _, click := range in.Clicks {
		if pos, ok := g.layout.cellAt(click.X, click.Y); ok {
			g.cursor = pos
			g.session.SelectCell(pos)
		} else if pos, ok := g.layout.posAt(click.X, click.Y); ok {
			g.session.SelectCell(pos)
		}
	}
	if in.Has(platformcore.ActionSelect) {
		g.session.SelectCell(g.cursor)
	}
	if in.Has(platformcore.ActionShuffle) {
		g.session.ForceShuffle()
	}
	if in.Has(platformcore.ActionHint) {
		g.showHint()
	}

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in platformcore.InputFrame) {
	switch {
	case in.Has(platformcore.ActionUp):
		g.cursor.Row--
	case in.Has(platformcore.ActionDown):
		g.cursor.Row++
	case in.Has(platformcore.ActionLeft):
		g.cursor.Col--
	case in.Has(platformcore.ActionRight):
		g.cursor.Col++
	default:
		return
	}
	g.cursor.Row = platformcore.Clamp(g.cursor.Row, 1, g.session.Rows())
	g.cursor.Col = platformcore.Clamp(g.cursor.Col, 1, g.session.Cols())
}

func (g *Game) showHint() {
	move, ok := g.session.Hint()
	if !ok {
		g.hint = nil
		g.message = "No moves available."
		return
	}
	g.hint = &move
	g.message = "Hint: link the highlighted pair."
	g.log.Debug("hint", "a", move.A, "b", move.B)
}

func (g *Game) restartLevel() {
	g.score = g.levelScore
	g.frames = 0
	if err := g.session.Restart(g.session.LevelIndex()); err != nil {
		g.log.Error("cannot restart level", "level", g.session.LevelIndex()+1, "err", err)
	}
	g.Resize(g.screenW, g.screenH)
}

func (g *Game) nextLevel() {
	g.frames = 0
	if err := g.session.NextLevel(); err != nil {
		g.log.Error("cannot start next level", "level", g.session.LevelIndex()+2, "err", err)
		return
	}
	g.Resize(g.screenW, g.screenH)
}

// onEvent is the session listener. It may run before g.session is assigned.
func (g *Game) onEvent(ev core.Event) {
	g.log.Debug("event",
		"kind", ev.Kind,
		"level", ev.LevelIndex+1,
		"a", ev.A,
		"b", ev.B,
		"reason", ev.Reason,
		"time", ev.TimeRemaining,
	)

	if msg := ev.Message(); msg != "" {
		g.message = msg
	}

	switch ev.Kind {
	case core.EventLevelStarted:
		g.levelScore = g.score
		g.cursor = core.P(1, 1)
		g.hint = nil
	case core.EventMatched:
		g.score += PointsPerPair
		g.hint = nil
	case core.EventShuffled:
		g.hint = nil
		if ev.Shuffle.Forced {
			g.log.Debug("shuffle fell back to a constructed pair", "attempts", ev.Shuffle.Attempts)
		}
	case core.EventDeadlock:
		g.hint = nil
		g.log.Warn("no playable arrangement", "level", ev.LevelIndex+1)
	case core.EventCleared:
		g.score += ev.TimeRemaining
		g.finishLevel(ev, true)
	case core.EventTimeUp:
		g.hint = nil
		g.finishLevel(ev, false)
	}
}

func (g *Game) finishLevel(ev core.Event, cleared bool) {
	var stats core.Stats
	if g.session != nil {
		stats = g.session.Stats()
	}
	outcome := LevelOutcome{
		RunID:        g.runID,
		Level:        ev.LevelIndex + 1,
		Cleared:      cleared,
		SecondsLeft:  ev.TimeRemaining,
		PairsRemoved: stats.PairsRemoved,
		Shuffles:     stats.Shuffles,
		Score:        g.score,
	}

	g.log.Info("level finished",
		"run", outcome.RunID,
		"level", outcome.Level,
		"cleared", outcome.Cleared,
		"seconds_left", outcome.SecondsLeft,
		"pairs", outcome.PairsRemoved,
		"score", outcome.Score,
	)

	if g.opts.Recorder != nil {
		g.opts.Recorder.RecordLevel(outcome)
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Score:  g.score,
		Paused: g.paused,
	}
	if g.session != nil {
		st.Level = g.session.LevelIndex() + 1
		st.GameOver = g.session.Status() == core.StatusTimeUp
	}
	return st
}

// Session returns the underlying session.
func (g *Game) Session() *core.Session {
	return g.session
}

// RunID returns the identifier of the current run.
func (g *Game) RunID() string {
	return g.runID
}

// Message returns the current status line text.
func (g *Game) Message() string {
	return g.message
}

// Cursor returns the cursor position.
func (g *Game) Cursor() core.Pos {
	return g.cursor
}

// Err returns the error that prevented the session from starting, if any.
func (g *Game) Err() error {
	return g.err
}
