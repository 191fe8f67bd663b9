package memory

import (
	"sync"

	"github.com/stealthstack/survivesimgame/internal/app/ports"
	"github.com/stealthstack/survivesimgame/internal/domain/survival"
)

type Store struct {
	mu       sync.RWMutex
	txMu     sync.Mutex
	runs     map[string]ports.RunRecord
	events   map[string][]survival.DomainEvent
	snapshot *ports.Snapshot
}

func NewStore() *Store {
	return &Store{
		runs:   make(map[string]ports.RunRecord),
		events: make(map[string][]survival.DomainEvent),
	}
}

func (s *Store) SeedRun(run ports.RunRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.RunID] = run
}
