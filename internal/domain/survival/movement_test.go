package survival

import (
	"testing"

	"github.com/stealthstack/survivesimgame/internal/domain/world"
)

func TestMoveToward_StepsDiagonallyAndCharges(t *testing.T) {
	grid := emptyGrid(10, 10)
	grid.Set(world.Point{X: 7, Y: 3}, world.TileRiver)
	s := NewSurvivor(world.Point{X: 2, Y: 6})

	if !MoveToward(s, grid, world.TileRiver) {
		t.Fatalf("expected a move")
	}
	if s.Position != (world.Point{X: 3, Y: 5}) || s.Energy != 98 {
		t.Fatalf("unexpected move %v energy %v", s.Position, s.Energy)
	}
}

func TestMoveToward_MissingTileAndSleeping(t *testing.T) {
	grid := emptyGrid(5, 5)
	s := NewSurvivor(world.Point{X: 2, Y: 2})
	if MoveToward(s, grid, world.TileTree) || s.Energy != StartEnergy {
		t.Fatalf("no target means no move and no cost")
	}

	grid.Set(world.Point{X: 3, Y: 3}, world.TileTree)
	s.Sleeping = true
	if MoveToward(s, grid, world.TileTree) || s.Position != (world.Point{X: 2, Y: 2}) {
		t.Fatalf("sleeping survivors do not move")
	}
}

func TestMoveToward_ClampsToInterior(t *testing.T) {
	grid := emptyGrid(6, 6)
	grid.Set(world.Point{X: 0, Y: 0}, world.TileRiver)
	s := NewSurvivor(world.Point{X: 1, Y: 1})

	MoveToward(s, grid, world.TileRiver)
	if s.Position != (world.Point{X: 1, Y: 1}) {
		t.Fatalf("expected clamp to the interior, got %v", s.Position)
	}
}

func TestMoveTowardShelter(t *testing.T) {
	grid := emptyGrid(9, 9)
	s := NewSurvivor(world.Point{X: 4, Y: 4})
	if MoveTowardShelter(s, grid) {
		t.Fatalf("no shelter to return to")
	}
	PitchStarterTent(s, grid)
	s.Position = world.Point{X: 7, Y: 7}

	if !MoveTowardShelter(s, grid) {
		t.Fatalf("expected a move")
	}
	if s.Position != (world.Point{X: 6, Y: 6}) {
		t.Fatalf("expected a step toward the centroid, got %v", s.Position)
	}
}

func TestFloorDiv(t *testing.T) {
	cases := [][3]int{{7, 2, 3}, {-7, 2, -4}, {6, 3, 2}, {-6, 3, -2}}
	for _, c := range cases {
		if got := floorDiv(c[0], c[1]); got != c[2] {
			t.Fatalf("floorDiv(%d,%d)=%d, want %d", c[0], c[1], got, c[2])
		}
	}
}

func TestWander_StaysInBounds(t *testing.T) {
	grid := emptyGrid(8, 6)
	s := NewSurvivor(world.Point{X: 1, Y: 1})
	rng := NewRand(7)

	for i := 0; i < 5000; i++ {
		s.Energy = StartEnergy
		Wander(s, grid, rng)
		p := s.Position
		if p.X < 1 || p.X > 6 || p.Y < 1 || p.Y > 4 {
			t.Fatalf("wandered out of the interior to %v", p)
		}
	}
	if s.CurrentAction != "Exploring" {
		t.Fatalf("unexpected label %q", s.CurrentAction)
	}
}

func TestWander_UsesDrawsPerAxis(t *testing.T) {
	grid := emptyGrid(8, 8)
	s := NewSurvivor(world.Point{X: 4, Y: 4})
	Wander(s, grid, &stubRand{ints: []int{2, 0}})
	if s.Position != (world.Point{X: 5, Y: 3}) || s.Energy != 99 {
		t.Fatalf("unexpected wander %v energy %v", s.Position, s.Energy)
	}
}
