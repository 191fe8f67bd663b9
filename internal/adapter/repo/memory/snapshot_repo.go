package memory

import (
	"context"

	"github.com/stealthstack/survivesimgame/internal/app/ports"
)

type SnapshotRepo struct {
	store *Store
}

func NewSnapshotRepo(store *Store) SnapshotRepo {
	return SnapshotRepo{store: store}
}

func (r SnapshotRepo) Save(_ context.Context, snap ports.Snapshot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.snapshot = &snap
	return nil
}

func (r SnapshotRepo) Latest(_ context.Context) (ports.Snapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.snapshot == nil {
		return ports.Snapshot{}, ports.ErrNotFound
	}
	return *r.store.snapshot, nil
}
