package survival

import "github.com/stealthstack/survivesimgame/internal/domain/world"

type Policy struct{}

// Decide picks this tick's action. Rules are checked in strict priority
// order and the first one that applies wins.
func (Policy) Decide(s *Survivor, grid world.TileMap, rng Rand) Decision {
	if !s.Alive {
		return Decision{Kind: ActionIdle}
	}

	if s.Sleeping {
		if s.Energy > WakeEnergyThreshold || (s.Period != world.PeriodNight && s.Period != world.PeriodDawn) {
			if WakeUp(s) {
				return Decision{Kind: ActionWake}
			}
		}
		return Decision{Kind: ActionSleep}
	}

	if s.Energy < SleepEnergyThreshold || (s.Period == world.PeriodNight && s.Shelter.HasBed) {
		if Sleep(s) {
			return Decision{Kind: ActionSleep}
		}
		s.CurrentAction = "Exhausted with nowhere to sleep"
		return Decision{Kind: ActionIdle}
	}

	urgent := (s.Period == world.PeriodNight && s.Shelter.HasBed) ||
		s.Energy < UrgentEnergyThreshold ||
		s.SleepDeficit > UrgentDeficitHours
	if urgent && s.Shelter.HasBed {
		if s.Shelter.BedPos != nil && s.Position == *s.Shelter.BedPos {
			Sleep(s)
			return Decision{Kind: ActionSleep}
		}
		moved := MoveTowardShelter(s, grid)
		if moved {
			s.CurrentAction = "Heading back to bed"
		}
		return Decision{Kind: ActionReturnToBed, Moved: moved}
	}

	if s.Food < LowFoodThreshold || s.Day-s.LastFoodDay > FoodGapDays {
		if s.Season != world.SeasonWinter && rng.Float64() < SeekFishChance {
			moved := MoveToward(s, grid, world.TileRiver)
			if moved {
				s.CurrentAction = "Seeking fish"
			}
			return Decision{Kind: ActionSeekFish, Moved: moved}
		}
		moved := MoveToward(s, grid, world.TileTree)
		if moved {
			s.CurrentAction = "Seeking game"
		}
		return Decision{Kind: ActionSeekGame, Moved: moved}
	}

	if s.Period == world.PeriodAfternoon && s.Shelter.Level < ShelterCabin {
		if s.Shelter.Logs < s.Shelter.NextLogCost() {
			if rng.Float64() < SeekTreeChance {
				moved := MoveToward(s, grid, world.TileTree)
				if moved {
					s.CurrentAction = "Going to chop trees"
				}
				return Decision{Kind: ActionSeekTrees, Moved: moved}
			}
			if MoveToward(s, grid, world.TileLog) {
				s.CurrentAction = "Going to gather logs"
				return Decision{Kind: ActionSeekLogs, Moved: true}
			}
		}
		if !world.Contains(grid, world.TileStockpile) && rng.Float64() < StockpileChance {
			CreateStockpile(s, grid)
			return Decision{Kind: ActionCreateStockpile}
		}
		if MoveToward(s, grid, world.TileTree) {
			s.CurrentAction = "Preparing to build shelter"
			return Decision{Kind: ActionPrepareBuild, Moved: true}
		}
	}

	switch {
	case s.Season == world.SeasonSummer && rng.Float64() < SeasonalBiasChance:
		moved := MoveToward(s, grid, world.TileRiver)
		if moved {
			s.CurrentAction = "Heading to the river"
		}
		return Decision{Kind: ActionSeekRiver, Moved: moved}
	case s.Season == world.SeasonFall && rng.Float64() < SeasonalBiasChance:
		moved := MoveToward(s, grid, world.TileTree)
		if moved {
			s.CurrentAction = "Heading into the woods"
		}
		return Decision{Kind: ActionSeekForest, Moved: moved}
	}

	Wander(s, grid, rng)
	return Decision{Kind: ActionWander, Moved: true}
}

// Interact works the tile the survivor ended up on and returns the
// interactions that succeeded.
func (Policy) Interact(s *Survivor, grid world.TileMap, rng Rand) []ActionKind {
	if !s.Alive || s.Sleeping {
		return nil
	}
	var done []ActionKind
	record := func(kind ActionKind, ok bool) {
		if ok {
			done = append(done, kind)
		}
	}

	tile := grid.At(s.Position)
	switch {
	case tile == world.TileRiver && s.Season != world.SeasonWinter:
		record(ActionFish, GatherFood(s, grid, rng))
	case tile == world.TileTree:
		switch {
		case rng.Float64() < ChopChance:
			record(ActionChop, ChopTree(s, grid))
		case s.Shelter.Level < ShelterCabin:
			record(ActionBuild, BuildShelter(s, grid))
		default:
			record(ActionHunt, GatherFood(s, grid, rng))
		}
	case tile == world.TileLog:
		record(ActionGatherLogs, GatherLogs(s, grid))
	case rng.Float64() < ForageChance:
		record(ActionForage, GatherFood(s, grid, rng))
	}

	if s.Sheltered() && rng.Float64() < FurnishChance {
		if !s.Shelter.HasBed {
			record(ActionPlaceBed, AddBed(s))
		} else if !s.Shelter.HasStockpile {
			record(ActionPlaceStockpile, AddStockpile(s))
		}
	}
	return done
}
