package survival

import (
	"testing"

	"github.com/stealthstack/survivesimgame/internal/domain/world"
)

func tentSite() (*Survivor, *world.Grid) {
	grid := emptyGrid(9, 9)
	grid.Set(world.Point{X: 5, Y: 3}, world.TileTree)
	grid.Set(world.Point{X: 3, Y: 5}, world.TileTree)
	grid.Set(world.Point{X: 5, Y: 5}, world.TileTree)
	s := NewSurvivor(world.Point{X: 4, Y: 4})
	s.Shelter.Logs = 3
	return s, grid
}

func TestBuildShelter_Tent(t *testing.T) {
	s, grid := tentSite()

	if !BuildShelter(s, grid) {
		t.Fatalf("expected tent to be built: %s", s.CurrentAction)
	}
	if s.Shelter.Level != ShelterTent || s.Shelter.Logs != 0 || !s.Shelter.HasBed {
		t.Fatalf("unexpected shelter %+v", s.Shelter)
	}
	if s.Shelter.BedPos == nil || *s.Shelter.BedPos != (world.Point{X: 4, Y: 4}) {
		t.Fatalf("expected bed at the build site, got %v", s.Shelter.BedPos)
	}
	if len(s.Shelter.Tiles) != 7 {
		t.Fatalf("expected 7 wall tiles, got %d", len(s.Shelter.Tiles))
	}
	if grid.At(world.Point{X: 3, Y: 4}) != world.TileEmpty {
		t.Fatalf("west entrance must stay open")
	}
	if grid.At(world.Point{X: 5, Y: 3}) != world.TileTentWall || grid.At(world.Point{X: 4, Y: 5}) != world.TileTentWall {
		t.Fatalf("expected tent walls around the site:\n%v", grid.Rows())
	}
	if s.Energy != 90 || !approx(s.Skills.Building, 1.05) {
		t.Fatalf("unexpected energy/skill %v %v", s.Energy, s.Skills.Building)
	}
}

func TestBuildShelter_TentRefusalsLeaveNoTrace(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Survivor, g *world.Grid)
		label string
	}{
		{"logs", func(s *Survivor, g *world.Grid) { s.Shelter.Logs = 2 }, "Need 3 logs to build tent"},
		{"clearance", func(s *Survivor, g *world.Grid) { g.Set(world.Point{X: 3, Y: 3}, world.TileRiver) }, "Not enough clear space!"},
		{"trees", func(s *Survivor, g *world.Grid) { g.Set(world.Point{X: 5, Y: 5}, world.TileEmpty) }, "Need more trees nearby!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, grid := tentSite()
			tt.setup(s, grid)
			before := grid.Clone()
			logs := s.Shelter.Logs

			if BuildShelter(s, grid) {
				t.Fatalf("expected refusal")
			}
			if s.CurrentAction != tt.label {
				t.Fatalf("expected label %q, got %q", tt.label, s.CurrentAction)
			}
			if s.Shelter.Level != ShelterNone || s.Shelter.Logs != logs || s.Energy != StartEnergy {
				t.Fatalf("refused build mutated state: %+v energy=%v", s.Shelter, s.Energy)
			}
			for y := 0; y < grid.Height(); y++ {
				for x := 0; x < grid.Width(); x++ {
					p := world.Point{X: x, Y: y}
					if grid.At(p) != before.At(p) {
						t.Fatalf("refused build touched %v", p)
					}
				}
			}
		})
	}
}

func TestBuildShelter_TentNeedsInteriorSite(t *testing.T) {
	grid := emptyGrid(5, 5)
	s := NewSurvivor(world.Point{X: 0, Y: 2})
	s.Shelter.Logs = 3
	if BuildShelter(s, grid) || s.CurrentAction != "Not enough clear space!" {
		t.Fatalf("expected clearance failure at the edge, got %q", s.CurrentAction)
	}
}

func TestBuildShelter_CabinUpgrade(t *testing.T) {
	grid := emptyGrid(15, 9)
	for _, p := range []world.Point{{X: 5, Y: 3}, {X: 3, Y: 5}, {X: 5, Y: 5}} {
		grid.Set(p, world.TileTree)
	}
	s := NewSurvivor(world.Point{X: 4, Y: 4})
	s.Shelter.Logs = 3
	if !BuildShelter(s, grid) {
		t.Fatalf("tent: %s", s.CurrentAction)
	}
	s.Shelter.Logs = 10
	s.Skills.Building = 1.5

	if BuildShelter(s, grid) || s.CurrentAction != "Not enough clear space!" {
		t.Fatalf("tent walls block a cabin on the same spot, got %q", s.CurrentAction)
	}

	s.Position = world.Point{X: 10, Y: 4}
	if !BuildShelter(s, grid) {
		t.Fatalf("cabin: %s", s.CurrentAction)
	}
	if s.Shelter.Level != ShelterCabin || s.Shelter.Logs != 0 || !s.Shelter.HasStockpile {
		t.Fatalf("unexpected cabin %+v", s.Shelter)
	}
	if *s.Shelter.BedPos != (world.Point{X: 10, Y: 4}) {
		t.Fatalf("expected bed at the cabin site, got %v", *s.Shelter.BedPos)
	}
	if s.Shelter.StockpilePos == nil || *s.Shelter.StockpilePos != (world.Point{X: 11, Y: 4}) {
		t.Fatalf("expected stockpile east of the bed, got %v", s.Shelter.StockpilePos)
	}
	if len(s.Shelter.Tiles) != 15 {
		t.Fatalf("expected 15 cabin wall tiles, got %d", len(s.Shelter.Tiles))
	}
	if world.Count(grid, world.TileTentWall) != 0 {
		t.Fatalf("old tent walls must be cleared:\n%v", grid.Rows())
	}
	if grid.At(world.Point{X: 8, Y: 4}) != world.TileEmpty || grid.At(world.Point{X: 12, Y: 6}) != world.TileCabinWall {
		t.Fatalf("unexpected cabin footprint:\n%v", grid.Rows())
	}

	if BuildShelter(s, grid) || s.CurrentAction != "Cabin already built" {
		t.Fatalf("a cabin is the last tier, got %q", s.CurrentAction)
	}
}

func TestBuildShelter_CabinRefusals(t *testing.T) {
	grid := emptyGrid(15, 9)
	s := NewSurvivor(world.Point{X: 4, Y: 4})
	PitchStarterTent(s, grid)
	s.Position = world.Point{X: 10, Y: 4}

	s.Shelter.Logs = 9
	s.Skills.Building = 2
	if BuildShelter(s, grid) || s.CurrentAction != "Need 10 logs to build cabin" {
		t.Fatalf("expected log refusal, got %q", s.CurrentAction)
	}

	s.Shelter.Logs = 10
	s.Skills.Building = 1.4
	if BuildShelter(s, grid) || s.CurrentAction != "Need more building skill for a cabin" {
		t.Fatalf("expected skill refusal, got %q", s.CurrentAction)
	}
	if s.Energy != StartEnergy || s.Shelter.Logs != 10 || s.Shelter.Level != ShelterTent {
		t.Fatalf("skill refusal must not spend anything")
	}
	if world.Count(grid, world.TileTentWall) != 7 || world.Count(grid, world.TileCabinWall) != 0 {
		t.Fatalf("skill refusal must not touch the grid:\n%v", grid.Rows())
	}
}

func TestBuildShelter_NotWhileSleeping(t *testing.T) {
	s, grid := tentSite()
	s.Sleeping = true
	if BuildShelter(s, grid) {
		t.Fatalf("cannot build while asleep")
	}
}

func TestChopTree(t *testing.T) {
	grid := mustGrid(".....", ".Y...", "..Y..", ".....")
	s := NewSurvivor(world.Point{X: 2, Y: 2})

	if !ChopTree(s, grid) {
		t.Fatalf("expected a chop")
	}
	// Row-major scan reaches (1,1) before the center.
	if grid.At(world.Point{X: 1, Y: 1}) != world.TileLog || grid.At(world.Point{X: 2, Y: 2}) != world.TileTree {
		t.Fatalf("unexpected grid after chop:\n%v", grid.Rows())
	}
	if s.Energy != 85 || !approx(s.Skills.Building, 1.2) {
		t.Fatalf("unexpected energy/skill %v %v", s.Energy, s.Skills.Building)
	}

	s.Energy = 14
	if ChopTree(s, grid) || s.CurrentAction != "Too tired to chop" {
		t.Fatalf("expected tired refusal, got %q", s.CurrentAction)
	}
}

func TestChopTree_SkipsShelterTiles(t *testing.T) {
	grid := mustGrid("...", ".Y.", "...")
	s := NewSurvivor(world.Point{X: 1, Y: 1})
	s.Shelter.Tiles = []ShelterTile{{Pos: world.Point{X: 1, Y: 1}, Code: world.TileTentWall}}
	if ChopTree(s, grid) {
		t.Fatalf("must not chop the shelter's own tile")
	}
}

func TestGatherLogs(t *testing.T) {
	grid := mustGrid("L..", "...", "..L")
	s := NewSurvivor(world.Point{X: 1, Y: 1})

	if !GatherLogs(s, grid) || !GatherLogs(s, grid) {
		t.Fatalf("expected both logs gathered")
	}
	if GatherLogs(s, grid) {
		t.Fatalf("no logs left")
	}
	if s.Shelter.Logs != 2 || s.Energy != 90 || world.Count(grid, world.TileLog) != 0 {
		t.Fatalf("unexpected result logs=%d energy=%v", s.Shelter.Logs, s.Energy)
	}

	grid.Set(world.Point{}, world.TileLog)
	s.Energy = 4
	if GatherLogs(s, grid) {
		t.Fatalf("too tired to haul")
	}
}

func TestCreateStockpile(t *testing.T) {
	s, grid := tentSite()
	if CreateStockpile(s, grid) {
		t.Fatalf("stockpile needs a shelter")
	}
	BuildShelter(s, grid)

	// Walk to the entrance; its empty neighbors sit next to the tent.
	s.Position = world.Point{X: 2, Y: 4}
	if !CreateStockpile(s, grid) {
		t.Fatalf("expected a stockpile")
	}
	if world.Count(grid, world.TileStockpile) != 1 || grid.At(world.Point{X: 1, Y: 3}) != world.TileStockpile {
		t.Fatalf("expected stockpile at the first eligible cell:\n%v", grid.Rows())
	}
	if s.Energy != 80 {
		t.Fatalf("expected 10 energy spent, got %v", s.Energy)
	}

	far := NewSurvivor(world.Point{X: 7, Y: 7})
	far.Shelter = s.Shelter
	far.Shelter.Tiles = []ShelterTile{{Pos: world.Point{X: 1, Y: 1}}}
	if CreateStockpile(far, grid) {
		t.Fatalf("stockpile must be close to the shelter")
	}
}

func TestPitchStarterTent(t *testing.T) {
	grid := emptyGrid(7, 7)
	s := NewSurvivor(world.Point{X: 3, Y: 3})
	PitchStarterTent(s, grid)
	if s.Shelter.Level != ShelterTent || !s.Shelter.HasBed || s.Shelter.Logs != 0 {
		t.Fatalf("unexpected starter tent %+v", s.Shelter)
	}
	if world.Count(grid, world.TileTentWall) != 7 || s.Energy != StartEnergy {
		t.Fatalf("starter tent must be free")
	}
}

func TestAddBedAndStockpile(t *testing.T) {
	s := NewSurvivor(world.Point{X: 3, Y: 3})
	if AddBed(s) || AddStockpile(s) {
		t.Fatalf("furniture needs a shelter")
	}

	s.Shelter.Level = ShelterTent
	if !AddBed(s) || s.CurrentAction != "Bed placed in tent" {
		t.Fatalf("expected bed, got %q", s.CurrentAction)
	}
	if AddStockpile(s) {
		t.Fatalf("stockpile needs a cabin")
	}

	bed := world.Point{X: 3, Y: 3}
	s.Shelter.Level = ShelterCabin
	s.Shelter.BedPos = &bed
	if !AddStockpile(s) || !s.Shelter.HasStockpile {
		t.Fatalf("expected stockpile")
	}
	if *s.Shelter.StockpilePos != (world.Point{X: 4, Y: 3}) {
		t.Fatalf("unexpected stockpile position %v", *s.Shelter.StockpilePos)
	}
	if AddStockpile(s) {
		t.Fatalf("stockpile already placed")
	}
}
