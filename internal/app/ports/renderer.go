package ports

import (
	"github.com/stealthstack/survivesimgame/internal/domain/survival"
	"github.com/stealthstack/survivesimgame/internal/domain/world"
)

type Frame struct {
	Tick     int64
	Grid     world.TileMap
	Survivor *survival.Survivor
}

type Renderer interface {
	Render(frame Frame) error
	GameOver(frame Frame) error
}
