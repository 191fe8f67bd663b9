package survival_test

import (
	"context"
	"testing"

	"github.com/stealthstack/survivesimgame/internal/adapter/world/procedural"
	"github.com/stealthstack/survivesimgame/internal/domain/survival"
	"github.com/stealthstack/survivesimgame/internal/domain/world"
)

type longRun struct {
	ticks     int
	rollovers int
	nights    int
	survivor  *survival.Survivor
}

// runCamp plays one seeded run on procedural terrain starting from a
// pitched tent, checking every tick's invariants on the way.
func runCamp(t *testing.T, seed int64, maxTicks int) longRun {
	t.Helper()
	grid, err := procedural.NewProvider(procedural.DefaultConfig()).Generate(context.Background(), seed, 50, 20)
	if err != nil {
		t.Fatalf("seed %d: generate: %v", seed, err)
	}
	s := survival.NewSurvivor(world.ClampInterior(grid, world.Point{X: 20, Y: 10}))
	s.TimeOfDay = survival.StartMinute
	s.Period = world.PeriodAt(s.TimeOfDay)
	s.PrevPeriod = s.Period
	survival.PitchStarterTent(s, grid)

	rng := survival.NewRand(seed)
	clock := survival.DefaultClock()
	policy := survival.Policy{}
	out := longRun{survivor: s}

	prev := *s
	for out.ticks < maxTicks && s.Alive {
		out.ticks++
		ev := clock.Advance(s, rng)
		if ev.DayRolledOver {
			out.rollovers++
		}
		if ev.NightStarted {
			out.nights++
		}
		policy.Decide(s, grid, rng)
		policy.Interact(s, grid, rng)
		survival.SurviveNight(s)
		survival.SpoilFood(s)

		tick := out.ticks
		if s.Energy < 0 || s.Energy > survival.MaxEnergy {
			t.Fatalf("seed %d tick %d: energy %v out of range", seed, tick, s.Energy)
		}
		if s.Food > survival.MaxFood {
			t.Fatalf("seed %d tick %d: food %v above cap", seed, tick, s.Food)
		}
		if s.Position.X < 1 || s.Position.X > grid.Width()-2 || s.Position.Y < 1 || s.Position.Y > grid.Height()-2 {
			t.Fatalf("seed %d tick %d: position %v left the interior", seed, tick, s.Position)
		}
		if s.Day < prev.Day || s.NightsSurvived < prev.NightsSurvived || s.Shelter.Level < prev.Shelter.Level {
			t.Fatalf("seed %d tick %d: monotonic counter went backwards", seed, tick)
		}
		if s.NightsSurvived > out.nights {
			t.Fatalf("seed %d tick %d: %d nights survived but only %d began", seed, tick, s.NightsSurvived, out.nights)
		}
		if s.Skills.Fishing < prev.Skills.Fishing || s.Skills.Hunting < prev.Skills.Hunting || s.Skills.Building < prev.Skills.Building {
			t.Fatalf("seed %d tick %d: skill decreased", seed, tick)
		}
		for kind, n := range s.FoodStock {
			if n < 0 {
				t.Fatalf("seed %d tick %d: negative %s stock", seed, tick, kind)
			}
		}
		if s.Shelter.Logs < 0 {
			t.Fatalf("seed %d tick %d: negative logs", seed, tick)
		}
		for _, wall := range s.Shelter.Tiles {
			if got := grid.At(wall.Pos); got != wall.Code {
				t.Fatalf("seed %d tick %d: shelter tile %v is %s, want %s", seed, tick, wall.Pos, got, wall.Code)
			}
		}
		prev = *s
	}
	return out
}

func TestPolicyLongRunInvariants(t *testing.T) {
	var cabins, rollovers, bestDay int
	for seed := int64(1); seed <= 20; seed++ {
		run := runCamp(t, seed, 20000)
		rollovers += run.rollovers
		if run.survivor.Day > bestDay {
			bestDay = run.survivor.Day
		}
		if run.survivor.Shelter.Level == survival.ShelterCabin {
			cabins++
		}
	}
	if rollovers == 0 || bestDay < 1 {
		t.Fatalf("no run lived past its first day: rollovers=%d best day=%d", rollovers, bestDay)
	}
	if cabins == 0 {
		t.Fatalf("no run upgraded its tent to a cabin")
	}
}
