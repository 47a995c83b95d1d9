package core

import (
	"encoding/binary"
	"hash/fnv"
)

// Snapshot captures the session state for determinism testing.
type Snapshot struct {
	Level         int // 1-indexed for display
	Rows          int
	Cols          int
	Status        Status
	TimeRemaining int
	Tiles         int
	Selection     Pos
	Selected      bool
	Pending       bool
	Board         string // RenderGridCompact output
	Stats         Stats
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Level:         s.levelIndex + 1,
		Rows:          s.grid.Rows(),
		Cols:          s.grid.Cols(),
		Status:        s.status,
		TimeRemaining: s.timeRemaining,
		Tiles:         s.grid.TileCount(),
		Selection:     s.selection,
		Selected:      s.hasSelection,
		Pending:       s.pendingPath != nil,
		Board:         RenderGridCompact(s.grid),
		Stats:         s.stats,
	}
}

// Hash returns an FNV-1a hash of the snapshot.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash computation
		_, _ = h.Write(buf[:])
	}

	put(snap.Level)
	put(snap.Rows)
	put(snap.Cols)
	put(int(snap.Status))
	put(snap.TimeRemaining)
	put(snap.Tiles)
	put(snap.Selection.Row)
	put(snap.Selection.Col)
	if snap.Selected {
		put(1)
	} else {
		put(0)
	}
	if snap.Pending {
		put(1)
	} else {
		put(0)
	}
	put(snap.Stats.PairsRemoved)
	put(snap.Stats.Mismatches)
	put(snap.Stats.NoPaths)
	put(snap.Stats.Shuffles)
	_, _ = h.Write([]byte(snap.Board))
	return h.Sum64()
}
