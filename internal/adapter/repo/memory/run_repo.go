package memory

import (
	"context"

	"github.com/stealthstack/survivesimgame/internal/app/ports"
)

type RunRepo struct {
	store *Store
}

func NewRunRepo(store *Store) RunRepo {
	return RunRepo{store: store}
}

func (r RunRepo) Create(_ context.Context, run ports.RunRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.runs[run.RunID]; exists {
		return ports.ErrConflict
	}
	r.store.runs[run.RunID] = run
	return nil
}

func (r RunRepo) Get(_ context.Context, runID string) (ports.RunRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	run, ok := r.store.runs[runID]
	if !ok {
		return ports.RunRecord{}, ports.ErrNotFound
	}
	return run, nil
}

func (r RunRepo) Close(_ context.Context, runID string, summary ports.RunSummary) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	run, ok := r.store.runs[runID]
	if !ok {
		return ports.ErrNotFound
	}
	if run.Status != ports.RunStatusAlive {
		return ports.ErrConflict
	}
	endedAt := summary.EndedAt
	run.Status = summary.FinalStatus()
	run.EndedAt = &endedAt
	run.DaysSurvived = summary.DaysSurvived
	run.NightsSurvived = summary.NightsSurvived
	run.DeathCause = summary.DeathCause
	r.store.runs[runID] = run
	return nil
}
