package core

// AutoplayResult summarizes an automatic run.
type AutoplayResult struct {
	Moves    int  // Pairs removed
	Cleared  bool // Board cleared
	Deadlock bool // Stopped because no arrangement was playable
}

// Autoplay plays hinted moves until the board is cleared, no move remains, or
// maxMoves pairs have been removed. The timer is not ticked.
//
// If the session was created with a VirtualClock as its Scheduler, pass it as
// clock so each pending removal is resolved; pass nil for immediate resolution.
func (s *Session) Autoplay(maxMoves int, clock *VirtualClock) AutoplayResult {
	var res AutoplayResult
	s.clearSelection()

	for res.Moves < maxMoves && s.status == StatusPlaying && !s.tornDown {
		move, ok := s.Hint()
		if !ok {
			if ev := s.ForceShuffle(); ev.Kind == EventDeadlock {
				res.Deadlock = true
				break
			}
			continue
		}

		s.SelectCell(move.A)
		if ev := s.SelectCell(move.B); ev.Kind != EventPathFound {
			break
		}
		if clock != nil {
			clock.Advance(s.opts.ResolveDelay)
		}
		if s.status == StatusAwaitingResolution {
			break
		}
		res.Moves++
	}

	res.Cleared = s.status == StatusCleared
	return res
}
