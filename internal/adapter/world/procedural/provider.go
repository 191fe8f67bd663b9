package procedural

import (
	"context"
	"fmt"

	"github.com/stealthstack/survivesimgame/internal/domain/survival"
	"github.com/stealthstack/survivesimgame/internal/domain/world"
)

type Config struct {
	Rivers           int
	RiverFill        float64
	RiverWidenChance float64
	Forests          int
	ForestRadius     int
	ForestDensity    float64
	ForestFalloff    float64
	Clearings        int
	ClearingRadius   int
	ClearingChance   float64
	ClusterMargin    int
	RiverMargin      int
}

type Provider struct {
	cfg Config
}

func DefaultConfig() Config {
	return Config{
		Rivers:           2,
		RiverFill:        0.7,
		RiverWidenChance: 0.3,
		Forests:          5,
		ForestRadius:     3,
		ForestDensity:    0.6,
		ForestFalloff:    0.1,
		Clearings:        5,
		ClearingRadius:   5,
		ClearingChance:   0.7,
		ClusterMargin:    10,
		RiverMargin:      5,
	}
}

func NewProvider(cfg Config) Provider {
	def := DefaultConfig()
	if cfg == (Config{}) {
		cfg = def
	}
	if cfg.ForestRadius <= 0 {
		cfg.ForestRadius = def.ForestRadius
	}
	if cfg.ClearingRadius <= 0 {
		cfg.ClearingRadius = def.ClearingRadius
	}
	return Provider{cfg: cfg}
}

// Generate lays out rivers, then forests, then carves clearings through
// the forests. The same seed always yields the same map.
func (p Provider) Generate(_ context.Context, seed int64, width, height int) (*world.Grid, error) {
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("%w: %dx%d", world.ErrInvalidGrid, width, height)
	}
	rng := survival.NewStream(seed, "terrain")
	grid := world.NewGrid(width, height)

	for i := 0; i < p.cfg.Rivers; i++ {
		p.layRiver(grid, rng, between(rng, p.cfg.RiverMargin, height-p.cfg.RiverMargin))
	}
	for i := 0; i < p.cfg.Forests; i++ {
		center := p.clusterCenter(grid, rng)
		p.plantForest(grid, rng, center)
	}
	for i := 0; i < p.cfg.Clearings; i++ {
		center := p.clusterCenter(grid, rng)
		p.carveClearing(grid, rng, center)
	}
	return grid, nil
}

func (p Provider) layRiver(grid *world.Grid, rng survival.Rand, y int) {
	for x := 0; x < grid.Width(); x++ {
		if rng.Float64() >= p.cfg.RiverFill {
			continue
		}
		grid.Set(world.Point{X: x, Y: y}, world.TileRiver)
		if rng.Float64() < p.cfg.RiverWidenChance {
			for _, dy := range []int{-1, 1} {
				grid.Set(world.Point{X: x, Y: y + dy}, world.TileRiver)
			}
		}
	}
}

func (p Provider) clusterCenter(grid *world.Grid, rng survival.Rand) world.Point {
	return world.Point{
		X: between(rng, p.cfg.ClusterMargin, grid.Width()-p.cfg.ClusterMargin),
		Y: between(rng, p.cfg.ClusterMargin, grid.Height()-p.cfg.ClusterMargin),
	}
}

func (p Provider) plantForest(grid *world.Grid, rng survival.Rand, center world.Point) {
	r := p.cfg.ForestRadius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			pos := center.Add(dx, dy)
			if !grid.InBounds(pos) {
				continue
			}
			chance := p.cfg.ForestDensity - float64(absInt(dx)+absInt(dy))*p.cfg.ForestFalloff
			if rng.Float64() < chance {
				grid.Set(pos, world.TileTree)
			}
		}
	}
}

func (p Provider) carveClearing(grid *world.Grid, rng survival.Rand, center world.Point) {
	r := p.cfg.ClearingRadius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			pos := center.Add(dx, dy)
			if !grid.InBounds(pos) || absInt(dx)+absInt(dy) > r {
				continue
			}
			if rng.Float64() < p.cfg.ClearingChance && grid.At(pos) == world.TileTree {
				grid.Set(pos, world.TileEmpty)
			}
		}
	}
}

// between draws uniformly from [lo, hi]. Bounds that cross on a small map
// are swapped and then clamped to at least zero.
func between(rng survival.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		hi = lo
	}
	return lo + rng.IntN(hi-lo+1)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
