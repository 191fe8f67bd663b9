package ports

import "github.com/stealthstack/survivesimgame/internal/domain/survival"

type TickMetrics interface {
	RecordTick(kind survival.ActionKind)
	RecordDayRollover()
	RecordShelterBuilt(level survival.ShelterLevel)
	RecordDeath(cause survival.DeathCause)
}
