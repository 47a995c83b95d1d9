package core

import "fmt"

// EventKind identifies what a session operation did.
type EventKind uint8

const (
	EventNone             EventKind = iota
	EventIgnored                    // Input rejected (not playing, or a match is pending)
	EventSelectionChanged           // Selection set or cleared
	EventNoMatch                    // Match attempt failed, see Reason
	EventPathFound                  // Match validated, removal pending
	EventMatched                    // Pending pair removed
	EventShuffled                   // Tiles redistributed
	EventDeadlock                   // No arrangement of the remaining tiles is playable
	EventCleared                    // Board empty, level complete
	EventTimeUp                     // Timer exhausted
	EventTick                       // Timer decremented
	EventLevelStarted               // New board built
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventIgnored:
		return "ignored"
	case EventSelectionChanged:
		return "selection_changed"
	case EventNoMatch:
		return "no_match"
	case EventPathFound:
		return "path_found"
	case EventMatched:
		return "matched"
	case EventShuffled:
		return "shuffled"
	case EventDeadlock:
		return "deadlock"
	case EventCleared:
		return "cleared"
	case EventTimeUp:
		return "time_up"
	case EventTick:
		return "tick"
	case EventLevelStarted:
		return "level_started"
	default:
		return fmt.Sprintf("event(%d)", k)
	}
}

// NoMatchReason explains why a match attempt failed.
type NoMatchReason uint8

const (
	ReasonNone NoMatchReason = iota
	ReasonSymbolMismatch
	ReasonNoPath
)

// String returns the string representation of a reason.
func (r NoMatchReason) String() string {
	switch r {
	case ReasonSymbolMismatch:
		return "symbol_mismatch"
	case ReasonNoPath:
		return "no_path"
	default:
		return "none"
	}
}

// Event is emitted by the session after every state change.
type Event struct {
	Kind          EventKind
	Reason        NoMatchReason // EventNoMatch only
	A             Pos           // First tile of a match attempt
	B             Pos           // Second tile of a match attempt
	Selection     Pos
	Selected      bool  // Whether Selection is set after the event
	Path          []Pos // EventPathFound only
	Shuffle       ShuffleResult
	Manual        bool // EventShuffled/EventDeadlock requested through ForceShuffle
	LevelIndex    int
	TimeRemaining int
}

// Message returns the status line text for the event.
// Events that do not change the status line return an empty string.
func (e Event) Message() string {
	switch e.Kind {
	case EventLevelStarted:
		return "Find and clear all the matching pairs!"
	case EventNoMatch:
		if e.Reason == ReasonNoPath {
			return "No link path with ≤2 turns."
		}
		return "Tiles must match. Try again!"
	case EventMatched:
		return "Great! Keep matching."
	case EventShuffled:
		if e.Manual {
			return ""
		}
		return "No moves left, shuffling tiles."
	case EventDeadlock:
		return "No moves possible. Restart the level."
	case EventCleared:
		return "Level cleared!"
	case EventTimeUp:
		return "Time's up! Tap restart to try again."
	default:
		return ""
	}
}
