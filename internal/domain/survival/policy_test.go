package survival

import (
	"testing"

	"github.com/stealthstack/survivesimgame/internal/domain/world"
)

func at(s *Survivor, minute int) *Survivor {
	s.TimeOfDay = minute
	s.Period = world.PeriodAt(minute)
	s.PrevPeriod = s.Period
	return s
}

func campGrid() *world.Grid {
	return mustGrid(
		"............",
		".=..........",
		".=......YY..",
		".=......Y...",
		".=..........",
		".=....L.....",
		"............",
	)
}

func TestDecide_DeadIsIdle(t *testing.T) {
	s := NewSurvivor(world.Point{X: 4, Y: 4})
	s.Alive = false
	if d := (Policy{}).Decide(s, campGrid(), &stubRand{}); d.Kind != ActionIdle {
		t.Fatalf("expected idle, got %s", d.Kind)
	}
}

func TestDecide_SleepingStaysAsleepAtNight(t *testing.T) {
	s := at(NewSurvivor(world.Point{X: 4, Y: 4}), 180)
	s.Sleeping = true
	s.Shelter.HasBed = true
	s.Energy = 90

	d := (Policy{}).Decide(s, campGrid(), &stubRand{})
	if d.Kind != ActionSleep || !s.Sleeping {
		t.Fatalf("expected to keep sleeping before the wake valve, got %s", d.Kind)
	}
}

func TestDecide_WakesInTheMorning(t *testing.T) {
	s := at(NewSurvivor(world.Point{X: 4, Y: 4}), 690)
	s.Sleeping = true
	s.Shelter.HasBed = true
	s.Energy = 50

	d := (Policy{}).Decide(s, campGrid(), &stubRand{})
	if d.Kind != ActionWake || s.Sleeping {
		t.Fatalf("expected wake, got %s", d.Kind)
	}
}

func TestDecide_ExhaustedWithoutBed(t *testing.T) {
	s := at(NewSurvivor(world.Point{X: 4, Y: 4}), 600)
	s.Energy = 10
	d := (Policy{}).Decide(s, campGrid(), &stubRand{})
	if d.Kind != ActionIdle || s.CurrentAction != "Exhausted with nowhere to sleep" {
		t.Fatalf("unexpected decision %s %q", d.Kind, s.CurrentAction)
	}
}

func TestDecide_SleepsAtNightWithBed(t *testing.T) {
	s := at(NewSurvivor(world.Point{X: 4, Y: 4}), 1260)
	s.Shelter.HasBed = true
	d := (Policy{}).Decide(s, campGrid(), &stubRand{})
	if d.Kind != ActionSleep || !s.Sleeping {
		t.Fatalf("expected sleep, got %s", d.Kind)
	}
}

func TestDecide_ReturnsToBedWhenTired(t *testing.T) {
	grid := emptyGrid(9, 9)
	s := at(NewSurvivor(world.Point{X: 4, Y: 4}), 600)
	PitchStarterTent(s, grid)
	s.Position = world.Point{X: 7, Y: 7}
	s.Energy = 25

	d := (Policy{}).Decide(s, grid, &stubRand{})
	if d.Kind != ActionReturnToBed || !d.Moved {
		t.Fatalf("expected return to bed, got %+v", d)
	}
	if s.Position != (world.Point{X: 6, Y: 6}) || s.CurrentAction != "Heading back to bed" {
		t.Fatalf("unexpected move %v %q", s.Position, s.CurrentAction)
	}

	s.Position = world.Point{X: 4, Y: 4}
	d = (Policy{}).Decide(s, grid, &stubRand{})
	if d.Kind != ActionSleep || !s.Sleeping {
		t.Fatalf("expected to sleep on the bed, got %s", d.Kind)
	}
}

func TestDecide_DeficitIsUrgent(t *testing.T) {
	grid := emptyGrid(9, 9)
	s := at(NewSurvivor(world.Point{X: 4, Y: 4}), 600)
	PitchStarterTent(s, grid)
	s.SleepDeficit = 7
	d := (Policy{}).Decide(s, grid, &stubRand{})
	if d.Kind != ActionSleep {
		t.Fatalf("expected deficit to send the survivor to bed, got %s", d.Kind)
	}
}

func TestDecide_SeeksFood(t *testing.T) {
	s := at(NewSurvivor(world.Point{X: 4, Y: 4}), 600)
	s.Food = 3
	d := (Policy{}).Decide(s, campGrid(), &stubRand{floats: []float64{0.5}})
	if d.Kind != ActionSeekFish || s.Position != (world.Point{X: 3, Y: 4}) {
		t.Fatalf("expected to head for the river, got %s at %v", d.Kind, s.Position)
	}

	s = at(NewSurvivor(world.Point{X: 4, Y: 4}), 600)
	s.Food = 3
	d = (Policy{}).Decide(s, campGrid(), &stubRand{floats: []float64{0.8}})
	if d.Kind != ActionSeekGame || s.Position != (world.Point{X: 5, Y: 3}) {
		t.Fatalf("expected to head for the woods, got %s at %v", d.Kind, s.Position)
	}
}

func TestDecide_WinterSkipsFishing(t *testing.T) {
	s := at(NewSurvivor(world.Point{X: 4, Y: 4}), 600)
	s.Season = world.SeasonWinter
	s.Day = 35
	s.LastFoodDay = 30
	rng := &stubRand{floats: []float64{0.1}}
	d := (Policy{}).Decide(s, campGrid(), rng)
	if d.Kind != ActionSeekGame {
		t.Fatalf("expected game in winter, got %s", d.Kind)
	}
	if rng.fi != 0 {
		t.Fatalf("winter must not roll for fish, drew %d", rng.fi)
	}
}

func TestDecide_AfternoonBuilding(t *testing.T) {
	s := at(NewSurvivor(world.Point{X: 4, Y: 4}), 800)
	d := (Policy{}).Decide(s, campGrid(), &stubRand{floats: []float64{0.5}})
	if d.Kind != ActionSeekTrees {
		t.Fatalf("expected seek trees, got %s", d.Kind)
	}

	s = at(NewSurvivor(world.Point{X: 4, Y: 4}), 800)
	d = (Policy{}).Decide(s, campGrid(), &stubRand{floats: []float64{0.9}})
	if d.Kind != ActionSeekLogs || s.Position != (world.Point{X: 5, Y: 5}) {
		t.Fatalf("expected seek logs, got %s at %v", d.Kind, s.Position)
	}

	s = at(NewSurvivor(world.Point{X: 4, Y: 4}), 800)
	s.Shelter.Logs = 3
	d = (Policy{}).Decide(s, campGrid(), &stubRand{floats: []float64{0.2}})
	if d.Kind != ActionCreateStockpile {
		t.Fatalf("expected stockpile attempt, got %s", d.Kind)
	}

	s = at(NewSurvivor(world.Point{X: 4, Y: 4}), 800)
	s.Shelter.Logs = 3
	d = (Policy{}).Decide(s, campGrid(), &stubRand{floats: []float64{0.9}})
	if d.Kind != ActionPrepareBuild || s.CurrentAction != "Preparing to build shelter" {
		t.Fatalf("expected build prep, got %s %q", d.Kind, s.CurrentAction)
	}
}

func TestDecide_CabinSkipsAfternoonBuilding(t *testing.T) {
	s := at(NewSurvivor(world.Point{X: 4, Y: 4}), 800)
	s.Shelter.Level = ShelterCabin
	d := (Policy{}).Decide(s, campGrid(), &stubRand{})
	if d.Kind != ActionWander {
		t.Fatalf("expected wander, got %s", d.Kind)
	}
}

func TestDecide_SeasonalBias(t *testing.T) {
	s := at(NewSurvivor(world.Point{X: 4, Y: 4}), 600)
	s.Season = world.SeasonSummer
	d := (Policy{}).Decide(s, campGrid(), &stubRand{floats: []float64{0.5}})
	if d.Kind != ActionSeekRiver || s.CurrentAction != "Heading to the river" {
		t.Fatalf("expected river bias, got %s", d.Kind)
	}

	s = at(NewSurvivor(world.Point{X: 4, Y: 4}), 600)
	s.Season = world.SeasonFall
	d = (Policy{}).Decide(s, campGrid(), &stubRand{floats: []float64{0.5}})
	if d.Kind != ActionSeekForest || s.CurrentAction != "Heading into the woods" {
		t.Fatalf("expected forest bias, got %s", d.Kind)
	}

	s = at(NewSurvivor(world.Point{X: 4, Y: 4}), 600)
	d = (Policy{}).Decide(s, campGrid(), &stubRand{ints: []int{2, 2}})
	if d.Kind != ActionWander || s.Position != (world.Point{X: 5, Y: 5}) {
		t.Fatalf("expected wander, got %s at %v", d.Kind, s.Position)
	}
}

func TestInteract_River(t *testing.T) {
	s := NewSurvivor(world.Point{X: 1, Y: 2})
	done := (Policy{}).Interact(s, campGrid(), &stubRand{floats: []float64{0.1}})
	if len(done) != 1 || done[0] != ActionFish {
		t.Fatalf("expected fish, got %v", done)
	}
}

func TestInteract_Tree(t *testing.T) {
	grid := campGrid()
	s := NewSurvivor(world.Point{X: 8, Y: 3})
	done := (Policy{}).Interact(s, grid, &stubRand{floats: []float64{0.1}})
	if len(done) != 1 || done[0] != ActionChop {
		t.Fatalf("expected chop, got %v", done)
	}

	s = NewSurvivor(world.Point{X: 8, Y: 3})
	done = (Policy{}).Interact(s, campGrid(), &stubRand{floats: []float64{0.5}})
	if len(done) != 0 || s.CurrentAction != "Need 3 logs to build tent" {
		t.Fatalf("expected a declined build, got %v %q", done, s.CurrentAction)
	}

	s = NewSurvivor(world.Point{X: 8, Y: 3})
	s.Shelter.Level = ShelterCabin
	s.Shelter.HasBed = true
	s.Shelter.HasStockpile = true
	done = (Policy{}).Interact(s, campGrid(), &stubRand{floats: []float64{0.5}})
	if len(done) != 1 || done[0] != ActionHunt {
		t.Fatalf("expected hunt once the cabin stands, got %v", done)
	}
}

func TestInteract_LogsAndForage(t *testing.T) {
	s := NewSurvivor(world.Point{X: 6, Y: 5})
	done := (Policy{}).Interact(s, campGrid(), &stubRand{})
	if len(done) != 1 || done[0] != ActionGatherLogs || s.Shelter.Logs != 1 {
		t.Fatalf("expected log pickup, got %v", done)
	}

	s = NewSurvivor(world.Point{X: 4, Y: 4})
	done = (Policy{}).Interact(s, campGrid(), &stubRand{floats: []float64{0.1}})
	if len(done) != 1 || done[0] != ActionForage {
		t.Fatalf("expected forage, got %v", done)
	}
}

func TestInteract_Furnishing(t *testing.T) {
	s := NewSurvivor(world.Point{X: 4, Y: 4})
	s.Shelter.Level = ShelterTent
	done := (Policy{}).Interact(s, campGrid(), &stubRand{floats: []float64{0.9, 0.05}})
	if len(done) != 1 || done[0] != ActionPlaceBed || !s.Shelter.HasBed {
		t.Fatalf("expected bed placement, got %v", done)
	}
}

func TestInteract_SleepingDoesNothing(t *testing.T) {
	s := NewSurvivor(world.Point{X: 1, Y: 2})
	s.Sleeping = true
	if done := (Policy{}).Interact(s, campGrid(), &stubRand{floats: []float64{0}}); done != nil {
		t.Fatalf("expected nothing while asleep, got %v", done)
	}
}
