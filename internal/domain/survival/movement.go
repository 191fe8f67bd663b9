package survival

import "github.com/stealthstack/survivesimgame/internal/domain/world"

func stepToward(from, to world.Point) world.Point {
	next := from
	if from.X < to.X {
		next.X++
	} else if from.X > to.X {
		next.X--
	}
	if from.Y < to.Y {
		next.Y++
	} else if from.Y > to.Y {
		next.Y--
	}
	return next
}

// MoveToward steps once toward the nearest tile of the given code. It
// reports false when the map holds no such tile.
func MoveToward(s *Survivor, grid world.TileMap, code world.TileCode) bool {
	if s.Sleeping {
		return false
	}
	target, ok := world.Nearest(grid, code, s.Position)
	if !ok {
		return false
	}
	s.Position = world.ClampInterior(grid, stepToward(s.Position, target))
	s.spendEnergy(MoveEnergyCost)
	return true
}

func MoveTowardShelter(s *Survivor, grid world.TileMap) bool {
	if s.Sleeping || len(s.Shelter.Tiles) == 0 {
		return false
	}
	s.Position = world.ClampInterior(grid, stepToward(s.Position, shelterCentroid(s.Shelter)))
	s.spendEnergy(MoveEnergyCost)
	return true
}

func shelterCentroid(sh Shelter) world.Point {
	sumX, sumY := 0, 0
	for _, t := range sh.Tiles {
		sumX += t.Pos.X
		sumY += t.Pos.Y
	}
	n := len(sh.Tiles)
	return world.Point{X: floorDiv(sumX, n), Y: floorDiv(sumY, n)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func Wander(s *Survivor, grid world.TileMap, rng Rand) {
	if s.Sleeping {
		return
	}
	dx := rng.IntN(3) - 1
	dy := rng.IntN(3) - 1
	s.Position = world.ClampInterior(grid, s.Position.Add(dx, dy))
	s.CurrentAction = "Exploring"
	s.spendEnergy(WanderEnergyCost)
}
