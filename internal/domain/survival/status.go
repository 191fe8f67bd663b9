package survival

import (
	"github.com/stealthstack/survivesimgame/internal/domain/world"
)

type Status struct {
	Tick           int64            `json:"tick"`
	Position       world.Point      `json:"position"`
	Clock          string           `json:"clock"`
	Day            int              `json:"day"`
	Season         world.Season     `json:"season"`
	Weather        world.Weather    `json:"weather"`
	Period         world.TimePeriod `json:"period"`
	Food           int              `json:"food"`
	FoodStock      map[FoodKind]int `json:"food_stock"`
	Energy         int              `json:"energy"`
	ShelterLevel   ShelterLevel     `json:"shelter_level"`
	ShelterType    string           `json:"shelter_type"`
	Logs           int              `json:"logs"`
	CurrentAction  string           `json:"current_action"`
	Skills         Skills           `json:"skills"`
	Sleeping       bool             `json:"sleeping"`
	SleepDeficit   int              `json:"sleep_deficit"`
	NightsSurvived int              `json:"nights_survived"`
	Alive          bool             `json:"alive"`
	DeathCause     DeathCause       `json:"death_cause,omitempty"`
}

func (s *Survivor) Status(tick int64) Status {
	stock := make(map[FoodKind]int, len(s.FoodStock))
	for k, v := range s.FoodStock {
		stock[k] = v
	}
	return Status{
		Tick:           tick,
		Position:       s.Position,
		Clock:          world.FormatClock(s.TimeOfDay),
		Day:            s.Day,
		Season:         s.Season,
		Weather:        s.Weather,
		Period:         s.Period,
		Food:           int(s.Food),
		FoodStock:      stock,
		Energy:         int(s.Energy),
		ShelterLevel:   s.Shelter.Level,
		ShelterType:    s.Shelter.Level.Name(),
		Logs:           s.Shelter.Logs,
		CurrentAction:  s.CurrentAction,
		Skills:         s.Skills,
		Sleeping:       s.Sleeping,
		SleepDeficit:   s.SleepDeficit,
		NightsSurvived: s.NightsSurvived,
		Alive:          s.Alive,
		DeathCause:     s.DeathCause,
	}
}
