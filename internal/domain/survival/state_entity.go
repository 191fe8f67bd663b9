package survival

import "github.com/stealthstack/survivesimgame/internal/domain/world"

func NewSurvivor(pos world.Point) *Survivor {
	period := world.PeriodAt(StartMinute)
	return &Survivor{
		Position: pos,
		Food:     StartFood,
		FoodStock: map[FoodKind]int{
			FoodFish:    0,
			FoodBerries: 0,
			FoodMeat:    0,
			FoodJerky:   0,
		},
		Energy: StartEnergy,
		Skills: Skills{
			Fishing:  StartFishing,
			Hunting:  StartHunting,
			Building: StartBuilding,
		},
		TimeOfDay:     StartMinute,
		Period:        period,
		PrevPeriod:    period,
		Season:        world.SeasonForDay(0),
		Weather:       world.WeatherClear,
		Alive:         true,
		CurrentAction: "Idle",
	}
}

func (s *Survivor) AddFood(kind FoodKind, amount int) {
	if amount <= 0 || kind == "" {
		return
	}
	if s.FoodStock == nil {
		s.FoodStock = map[FoodKind]int{}
	}
	s.FoodStock[kind] += amount
}

func (s *Survivor) ConsumeFood(kind FoodKind, amount int) bool {
	if amount <= 0 || kind == "" || s.FoodStock == nil {
		return false
	}
	current := s.FoodStock[kind]
	if current < amount {
		return false
	}
	s.FoodStock[kind] = current - amount
	return true
}

func (s *Survivor) StockedFood() int {
	total := 0
	for _, n := range s.FoodStock {
		total += n
	}
	return total
}

func (s *Survivor) Sheltered() bool {
	return s.Shelter.Level > ShelterNone
}

func (s *Survivor) MarkDead(cause DeathCause) {
	if cause == "" {
		cause = DeathCauseUnknown
	}
	s.Alive = false
	s.DeathCause = cause
}

func (s *Survivor) spendEnergy(amount float64) {
	s.Energy -= amount
	if s.Energy < 0 {
		s.Energy = 0
	}
}

func (s *Survivor) restoreEnergy(amount float64) {
	s.Energy += amount
	if s.Energy > MaxEnergy {
		s.Energy = MaxEnergy
	}
}

// Owns reports whether p is one of the shelter's own tiles.
func (sh Shelter) Owns(p world.Point) bool {
	for _, t := range sh.Tiles {
		if t.Pos == p {
			return true
		}
	}
	return false
}

// Near reports whether p lies within Chebyshev distance d of any shelter tile.
func (sh Shelter) Near(p world.Point, d int) bool {
	for _, t := range sh.Tiles {
		if t.Pos.Chebyshev(p) <= d {
			return true
		}
	}
	return false
}

func (sh Shelter) NextLogCost() int {
	if sh.Level == ShelterNone {
		return TentLogCost
	}
	return CabinLogCost
}
