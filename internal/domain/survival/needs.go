package survival

import (
	"fmt"
	"math"

	"github.com/stealthstack/survivesimgame/internal/domain/world"
)

// GatherFood works the tile under the survivor: fish on a river outside
// winter, hunt in a tree, forage berries anywhere in spring.
func GatherFood(s *Survivor, grid world.TileMap, rng Rand) bool {
	if s.Sleeping {
		return false
	}
	tile := grid.At(s.Position)
	switch {
	case tile == world.TileRiver && s.Season != world.SeasonWinter:
		if rng.Float64() < FishCatchChance {
			gained := gaussianYield(rng, FishYieldPerSkill*s.Skills.Fishing)
			s.AddFood(FoodFish, gained)
			s.Skills.Fishing += FishingSkillGain
			s.CurrentAction = fmt.Sprintf("Fishing (+%d)", gained)
			s.LastFoodDay = s.Day
			s.spendEnergy(FishEnergyCost)
			return true
		}
		s.CurrentAction = "Fishing (no catch)"
		s.spendEnergy(FishMissEnergyCost)
		return false
	case tile == world.TileTree:
		gained := gaussianYield(rng, HuntYieldPerSkill*s.Skills.Hunting)
		s.AddFood(FoodMeat, gained)
		s.Skills.Hunting += HuntingSkillGain
		s.CurrentAction = fmt.Sprintf("Hunting (+%d)", gained)
		s.LastFoodDay = s.Day
		s.spendEnergy(HuntEnergyCost)
		return true
	case s.Season == world.SeasonSpring:
		s.AddFood(FoodBerries, 1)
		s.CurrentAction = "Foraging berries (+1)"
		s.LastFoodDay = s.Day
		s.spendEnergy(ForageEnergyCost)
		return true
	}
	return false
}

func gaussianYield(rng Rand, mean float64) int {
	n := int(math.Round(rng.NormFloat64()*YieldStdDev + mean))
	if n < 1 {
		return 1
	}
	return n
}

// SpoilFood rots a share of the perishable stock. Jerky keeps.
func SpoilFood(s *Survivor) {
	for _, kind := range PerishableFoods {
		n := s.FoodStock[kind]
		if n <= 0 {
			continue
		}
		spoiled := int(math.Floor(float64(n) * SpoilRate))
		s.FoodStock[kind] = n - spoiled
	}
}

// EatFood moves stock into the food reserve one unit at a time until the
// reserve is full or the stock runs out. It returns the units eaten.
func EatFood(s *Survivor) int {
	eaten := 0
	for _, kind := range FoodEatOrder {
		for s.Food < MaxFood && s.ConsumeFood(kind, 1) {
			s.Food = math.Min(MaxFood, s.Food+1)
			eaten++
		}
	}
	return eaten
}

type NightOutcome struct {
	Applied  bool
	Consumed float64
	Counted  bool
	Died     bool
}

func NightConsumption(s *Survivor) float64 {
	consumption := NightConsumptionUnsheltered
	if s.Sheltered() {
		consumption = NightConsumptionSheltered
	}
	if s.SleepDeficit > 0 {
		consumption *= 1.0 + float64(s.SleepDeficit)*NightDeficitFactorPerHour
	}
	if !s.Sheltered() {
		consumption *= NightExposureFactor
		if s.Weather.Adverse() {
			consumption *= NightAdverseWeatherFactor
		}
	}
	if s.Shelter.HasBed {
		consumption *= NightBedFactor
	}
	if s.Shelter.HasStockpile {
		consumption *= NightStockpileFactor
	}
	if s.Season == world.SeasonWinter {
		consumption *= NightWinterFactor
	}
	return math.Max(NightMinConsumption, consumption)
}

// SurviveNight applies one tick of night-time upkeep to an awake survivor.
func SurviveNight(s *Survivor) NightOutcome {
	if !s.Alive || s.Period != world.PeriodNight || s.Sleeping {
		return NightOutcome{}
	}
	EatFood(s)

	consumed := NightConsumption(s)
	s.Food -= consumed
	s.spendEnergy(NightEnergyCost)
	out := NightOutcome{Applied: true, Consumed: consumed}

	switch {
	case s.Food <= 0:
		s.MarkDead(DeathCauseStarvation)
		out.Died = true
		return out
	case s.Energy <= 0:
		s.MarkDead(DeathCauseExhaustion)
		out.Died = true
		return out
	}

	if !s.CountedThisNight {
		s.NightsSurvived++
		s.CountedThisNight = true
		if s.Sheltered() {
			s.Skills.Building += NightBuildingGain
		}
		out.Counted = true
	}
	return out
}
