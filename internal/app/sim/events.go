package sim

import (
	"time"

	"github.com/stealthstack/survivesimgame/internal/domain/survival"
)

const (
	EventRunStarted    = "run_started"
	EventTickSettled   = "tick_settled"
	EventDayStarted    = "day_started"
	EventShelterBuilt  = "shelter_built"
	EventNightSurvived = "night_survived"
	EventGameOver      = "game_over"
	EventRunStopped    = "run_stopped"
)

func tickEvents(at time.Time, s *survival.Survivor, res StepResult, levelBefore survival.ShelterLevel) []survival.DomainEvent {
	events := make([]survival.DomainEvent, 0, 3)
	if res.Clock.DayRolledOver {
		events = append(events, survival.DomainEvent{
			Type:       EventDayStarted,
			OccurredAt: at,
			Payload: map[string]any{
				"tick":    res.Tick,
				"day":     s.Day,
				"season":  string(s.Season),
				"weather": string(s.Weather),
				"eaten":   res.Clock.Eaten,
			},
		})
	}

	interactions := make([]string, 0, len(res.Interactions))
	for _, kind := range res.Interactions {
		interactions = append(interactions, string(kind))
	}
	events = append(events, survival.DomainEvent{
		Type:       EventTickSettled,
		OccurredAt: at,
		Payload: map[string]any{
			"tick":         res.Tick,
			"decision":     string(res.Decision.Kind),
			"moved":        res.Decision.Moved,
			"interactions": interactions,
			"label":        s.CurrentAction,
			"state_after": map[string]any{
				"day":    s.Day,
				"minute": s.TimeOfDay,
				"food":   s.Food,
				"energy": s.Energy,
				"x":      s.Position.X,
				"y":      s.Position.Y,
			},
		},
	})

	if s.Shelter.Level > levelBefore {
		events = append(events, survival.DomainEvent{
			Type:       EventShelterBuilt,
			OccurredAt: at,
			Payload: map[string]any{
				"tick":  res.Tick,
				"level": int(s.Shelter.Level),
				"type":  s.Shelter.Level.Name(),
				"x":     s.Position.X,
				"y":     s.Position.Y,
			},
		})
	}
	if res.Night.Counted {
		events = append(events, survival.DomainEvent{
			Type:       EventNightSurvived,
			OccurredAt: at,
			Payload: map[string]any{
				"tick":            res.Tick,
				"day":             s.Day,
				"nights_survived": s.NightsSurvived,
			},
		})
	}
	if res.Night.Died {
		events = append(events, survival.DomainEvent{
			Type:       EventGameOver,
			OccurredAt: at,
			Payload: map[string]any{
				"tick":   res.Tick,
				"cause":  string(s.DeathCause),
				"days":   s.Day,
				"nights": s.NightsSurvived,
			},
		})
	}
	return events
}
