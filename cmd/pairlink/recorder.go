package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pairlink/internal/games/pairlink"
	"github.com/vovakirdan/pairlink/internal/storage"
)

// storeRecorder writes level outcomes to the scores database.
type storeRecorder struct {
	store  *storage.Store
	logger *log.Logger
}

func (r storeRecorder) RecordLevel(o pairlink.LevelOutcome) {
	if r.store == nil {
		return
	}
	if _, err := r.store.SaveLevelResult(levelResult(o)); err != nil {
		r.logger.Warn("could not save level result", "run", o.RunID, "level", o.Level, "err", err)
	}
}

func levelResult(o pairlink.LevelOutcome) storage.LevelResult {
	outcome := storage.OutcomeTimeUp
	if o.Cleared {
		outcome = storage.OutcomeCleared
	}
	return storage.LevelResult{
		RunID:        o.RunID,
		Level:        o.Level,
		Outcome:      outcome,
		SecondsLeft:  o.SecondsLeft,
		PairsRemoved: o.PairsRemoved,
		Shuffles:     o.Shuffles,
		Score:        o.Score,
	}
}
