package world

type TileCode byte

const (
	TileEmpty     TileCode = '.'
	TileRiver     TileCode = '='
	TileTree      TileCode = 'Y'
	TileLog       TileCode = 'L'
	TileStockpile TileCode = 'P'
	TileTentWall  TileCode = 'T'
	TileCabinWall TileCode = 'C'
)

func (c TileCode) String() string {
	return string(rune(c))
}

func (c TileCode) Name() string {
	switch c {
	case TileEmpty:
		return "empty"
	case TileRiver:
		return "river"
	case TileTree:
		return "tree"
	case TileLog:
		return "log"
	case TileStockpile:
		return "stockpile"
	case TileTentWall:
		return "tent_wall"
	case TileCabinWall:
		return "cabin_wall"
	default:
		return "unknown"
	}
}

// Buildable reports whether a shelter may be raised over the tile.
func (c TileCode) Buildable() bool {
	switch c {
	case TileEmpty, TileTree, TileLog, TileStockpile:
		return true
	default:
		return false
	}
}
