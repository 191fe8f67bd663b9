package memory

import (
	"context"

	"github.com/stealthstack/survivesimgame/internal/app/ports"
	"github.com/stealthstack/survivesimgame/internal/domain/survival"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, runID string, events []survival.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events[runID] = append(r.store.events[runID], events...)
	return nil
}

// ListByRunID returns the newest limit events in the order they happened.
func (r EventRepo) ListByRunID(_ context.Context, runID string, limit int) ([]survival.DomainEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	all := r.store.events[runID]
	if len(all) == 0 {
		return nil, ports.ErrNotFound
	}
	start := 0
	if limit > 0 && len(all) > limit {
		start = len(all) - limit
	}
	out := make([]survival.DomainEvent, len(all)-start)
	copy(out, all[start:])
	return out, nil
}
