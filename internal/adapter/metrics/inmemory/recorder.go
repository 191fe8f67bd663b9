package inmemory

import (
	"sync"

	"github.com/stealthstack/survivesimgame/internal/domain/survival"
)

type Snapshot struct {
	TickTotal     uint64            `json:"tick_total"`
	DayRollovers  uint64            `json:"day_rollovers"`
	SheltersBuilt uint64            `json:"shelters_built"`
	Deaths        uint64            `json:"deaths"`
	ByAction      map[string]uint64 `json:"by_action"`
	ByShelter     map[string]uint64 `json:"by_shelter"`
	ByDeathCause  map[string]uint64 `json:"by_death_cause"`
}

type Recorder struct {
	mu        sync.Mutex
	ticks     uint64
	days      uint64
	shelters  uint64
	deaths    uint64
	byAction  map[string]uint64
	byShelter map[string]uint64
	byCause   map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction:  map[string]uint64{},
		byShelter: map[string]uint64{},
		byCause:   map[string]uint64{},
	}
}

func (r *Recorder) RecordTick(kind survival.ActionKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks++
	r.byAction[string(kind)]++
}

func (r *Recorder) RecordDayRollover() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.days++
}

func (r *Recorder) RecordShelterBuilt(level survival.ShelterLevel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shelters++
	r.byShelter[level.Name()]++
}

func (r *Recorder) RecordDeath(cause survival.DeathCause) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deaths++
	r.byCause[string(cause)]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Snapshot{
		TickTotal:     r.ticks,
		DayRollovers:  r.days,
		SheltersBuilt: r.shelters,
		Deaths:        r.deaths,
		ByAction:      copyCounts(r.byAction),
		ByShelter:     copyCounts(r.byShelter),
		ByDeathCause:  copyCounts(r.byCause),
	}
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}

func copyCounts(in map[string]uint64) map[string]uint64 {
	out := make(map[string]uint64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
