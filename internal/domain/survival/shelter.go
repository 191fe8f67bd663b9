package survival

import "github.com/stealthstack/survivesimgame/internal/domain/world"

// neighborhood lists the square of the given radius around center in
// row-major order, center included.
func neighborhood(center world.Point, radius int) []world.Point {
	out := make([]world.Point, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			out = append(out, center.Add(dx, dy))
		}
	}
	return out
}

func ChopTree(s *Survivor, grid world.TileMap) bool {
	if s.Energy < ChopMinEnergy {
		s.CurrentAction = "Too tired to chop"
		return false
	}
	for _, p := range neighborhood(s.Position, 1) {
		if !world.InBounds(grid, p) || grid.At(p) != world.TileTree || s.Shelter.Owns(p) {
			continue
		}
		grid.Set(p, world.TileLog)
		s.spendEnergy(ChopEnergyCost)
		s.Skills.Building += ChopBuildingGain
		s.CurrentAction = "Chopped tree into logs"
		return true
	}
	return false
}

func GatherLogs(s *Survivor, grid world.TileMap) bool {
	if s.Energy < GatherLogsMinEnergy {
		s.CurrentAction = "Too tired to haul logs"
		return false
	}
	for _, p := range neighborhood(s.Position, 1) {
		if !world.InBounds(grid, p) || grid.At(p) != world.TileLog {
			continue
		}
		grid.Set(p, world.TileEmpty)
		s.spendEnergy(GatherLogsEnergyCost)
		s.Shelter.Logs++
		s.CurrentAction = "Gathered logs"
		return true
	}
	return false
}

// CreateStockpile marks an empty cell next to the survivor, close to the
// shelter, as a lumber stockpile.
func CreateStockpile(s *Survivor, grid world.TileMap) bool {
	if s.Energy < StockpileMinEnergy || s.Shelter.Level == ShelterNone {
		return false
	}
	for _, p := range neighborhood(s.Position, 1) {
		if p == s.Position {
			continue
		}
		if !world.InBounds(grid, p) || grid.At(p) != world.TileEmpty {
			continue
		}
		if !s.Shelter.Near(p, StockpileReach) {
			continue
		}
		grid.Set(p, world.TileStockpile)
		s.spendEnergy(StockpileEnergyCost)
		s.CurrentAction = "Created lumber stockpile"
		return true
	}
	return false
}

func CanBuildHere(s *Survivor, grid world.TileMap, radius int) bool {
	for _, p := range neighborhood(s.Position, radius) {
		if !world.InBounds(grid, p) || !grid.At(p).Buildable() {
			return false
		}
	}
	return true
}

func countAround(grid world.TileMap, center world.Point, radius int, code world.TileCode) int {
	n := 0
	for _, p := range neighborhood(center, radius) {
		if world.InBounds(grid, p) && grid.At(p) == code {
			n++
		}
	}
	return n
}

// tentTiles walls the 8-neighborhood, leaving the west cell as the entrance.
func tentTiles(center world.Point) []ShelterTile {
	out := make([]ShelterTile, 0, 7)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if dx == -1 && dy == 0 {
				continue
			}
			out = append(out, ShelterTile{Pos: center.Add(dx, dy), Code: world.TileTentWall})
		}
	}
	return out
}

// cabinTiles walls the ring at distance 2, leaving the west cell open.
func cabinTiles(center world.Point) []ShelterTile {
	out := make([]ShelterTile, 0, 15)
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if absInt(dx) != 2 && absInt(dy) != 2 {
				continue
			}
			if dx == -2 && dy == 0 {
				continue
			}
			out = append(out, ShelterTile{Pos: center.Add(dx, dy), Code: world.TileCabinWall})
		}
	}
	return out
}

// raise clears the shelter's previous tiles and writes the new ones.
func raise(s *Survivor, grid world.TileMap, tiles []ShelterTile) {
	for _, t := range s.Shelter.Tiles {
		if grid.At(t.Pos) == t.Code {
			grid.Set(t.Pos, world.TileEmpty)
		}
	}
	for _, t := range tiles {
		grid.Set(t.Pos, t.Code)
	}
	s.Shelter.Tiles = tiles
}

// BuildShelter upgrades the shelter one tier. Every requirement is checked
// before the grid is touched, so a refused build leaves no partial walls.
func BuildShelter(s *Survivor, grid world.TileMap) bool {
	if s.Sleeping {
		return false
	}
	switch s.Shelter.Level {
	case ShelterNone:
		if s.Shelter.Logs < TentLogCost {
			s.CurrentAction = "Need 3 logs to build tent"
			return false
		}
		if !CanBuildHere(s, grid, TentClearance) {
			s.CurrentAction = "Not enough clear space!"
			return false
		}
		if countAround(grid, s.Position, 1, world.TileTree) < TentMinTrees {
			s.CurrentAction = "Need more trees nearby!"
			return false
		}
		raise(s, grid, tentTiles(s.Position))
		bed := s.Position
		s.Shelter.Level = ShelterTent
		s.Shelter.BedPos = &bed
		s.Shelter.HasBed = true
		s.Shelter.Logs -= TentLogCost
		s.Skills.Building += BuildBuildingGain
		s.spendEnergy(BuildEnergyCost)
		s.CurrentAction = "Built a tent (enter from left)!"
		return true
	case ShelterTent:
		if s.Shelter.Logs < CabinLogCost {
			s.CurrentAction = "Need 10 logs to build cabin"
			return false
		}
		if !CanBuildHere(s, grid, CabinClearance) {
			s.CurrentAction = "Not enough clear space!"
			return false
		}
		if s.Skills.Building < CabinSkillRequirement {
			s.CurrentAction = "Need more building skill for a cabin"
			return false
		}
		raise(s, grid, cabinTiles(s.Position))
		bed := s.Position
		stock := s.Position.Add(1, 0)
		s.Shelter.Level = ShelterCabin
		s.Shelter.BedPos = &bed
		s.Shelter.StockpilePos = &stock
		s.Shelter.HasBed = true
		s.Shelter.HasStockpile = true
		s.Shelter.Logs -= CabinLogCost
		s.Skills.Building += BuildBuildingGain
		s.spendEnergy(BuildEnergyCost)
		s.CurrentAction = "Built a cabin (enter from left)!"
		return true
	default:
		s.CurrentAction = "Cabin already built"
		return false
	}
}

// PitchStarterTent gives a fresh survivor a tent at its feet without cost.
func PitchStarterTent(s *Survivor, grid world.TileMap) {
	if s.Shelter.Level != ShelterNone {
		return
	}
	raise(s, grid, tentTiles(s.Position))
	bed := s.Position
	s.Shelter.Level = ShelterTent
	s.Shelter.BedPos = &bed
	s.Shelter.HasBed = true
}

func AddBed(s *Survivor) bool {
	if s.Sleeping || s.Shelter.Level == ShelterNone {
		return false
	}
	s.Shelter.HasBed = true
	s.CurrentAction = "Bed placed in " + s.Shelter.Level.Name()
	return true
}

func AddStockpile(s *Survivor) bool {
	if s.Sleeping || s.Shelter.Level < ShelterCabin || s.Shelter.HasStockpile {
		return false
	}
	if s.Shelter.StockpilePos == nil && s.Shelter.BedPos != nil {
		stock := s.Shelter.BedPos.Add(1, 0)
		s.Shelter.StockpilePos = &stock
	}
	s.Shelter.HasStockpile = true
	s.CurrentAction = "Stockpile placed in cabin"
	return true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
