package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/stealthstack/survivesimgame/internal/app/ports"
	"github.com/stealthstack/survivesimgame/internal/domain/survival"
	"github.com/stealthstack/survivesimgame/internal/domain/world"
)

type Renderer struct {
	Out   io.Writer
	Clear bool
	Plain bool
}

func NewRenderer(out io.Writer) Renderer {
	return Renderer{Out: out, Clear: true}
}

func (r Renderer) Render(frame ports.Frame) error {
	var b strings.Builder
	if r.Clear && !r.Plain {
		b.WriteString(ansiClear)
	}
	r.drawMap(&b, frame.Grid, frame.Survivor)
	r.drawStatus(&b, frame.Survivor)
	_, err := io.WriteString(r.Out, b.String())
	return err
}

func (r Renderer) GameOver(frame ports.Frame) error {
	s := frame.Survivor
	_, err := fmt.Fprintf(r.Out, "\nGame Over! Survived %d days and %d nights.\n", s.Day, s.NightsSurvived)
	return err
}

func (r Renderer) paint(code, text string) string {
	if r.Plain {
		return text
	}
	return code + text + ansiReset
}

func (r Renderer) drawMap(b *strings.Builder, grid world.TileMap, s *survival.Survivor) {
	night := s.Period == world.PeriodNight
	for y := 0; y < grid.Height(); y++ {
		cells := make([]string, 0, grid.Width())
		for x := 0; x < grid.Width(); x++ {
			p := world.Point{X: x, Y: y}
			cells = append(cells, r.cell(grid, s, p, night))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}
}

// cell draws one map position. The survivor, shelter walls, bed and cabin
// stockpile sit on top of the terrain and are never dimmed at night.
func (r Renderer) cell(grid world.TileMap, s *survival.Survivor, p world.Point, night bool) string {
	if p == s.Position {
		return r.paint(ansiPlayer, "@")
	}
	for _, t := range s.Shelter.Tiles {
		if t.Pos == p {
			return t.Code.String()
		}
	}
	if s.Shelter.BedPos != nil && *s.Shelter.BedPos == p {
		return "B"
	}
	if s.Shelter.StockpilePos != nil && *s.Shelter.StockpilePos == p {
		return r.paint(ansiStockpile, "S")
	}

	tile := grid.At(p)
	var out string
	switch tile {
	case world.TileRiver:
		if s.Season == world.SeasonWinter {
			out = r.paint(ansiIce, "|")
		} else {
			out = r.paint(ansiRiver, tile.String())
		}
	case world.TileTree:
		out = r.paint(ansiTree, tile.String())
	case world.TileLog:
		out = r.paint(ansiLog, tile.String())
	case world.TileStockpile:
		out = r.paint(ansiStockpile, tile.String())
	default:
		out = tile.String()
	}
	if night {
		return r.paint(ansiDim, out)
	}
	return out
}

func (r Renderer) drawStatus(b *strings.Builder, s *survival.Survivor) {
	period := string(s.Period)
	fmt.Fprintf(b, "\n%s | Day: %d | Season: %s | Weather: %s\n",
		r.paint(periodColors[period], world.FormatClock(s.TimeOfDay)+" "+period),
		s.Day, s.Season, s.Weather)
	fmt.Fprintf(b, "Food: %d (Fish:%d Berries:%d Meat:%d Jerky:%d) | Energy: %d | Shelter: %d/2 (%s)\n",
		int(s.Food),
		s.FoodStock[survival.FoodFish], s.FoodStock[survival.FoodBerries],
		s.FoodStock[survival.FoodMeat], s.FoodStock[survival.FoodJerky],
		int(s.Energy), s.Shelter.Level, s.Shelter.Level.Name())
	fmt.Fprintf(b, "Logs: %d | Action: %s\n", s.Shelter.Logs, s.CurrentAction)
	fmt.Fprintf(b, "Skills: Fishing(%.1f) Hunting(%.1f) Building(%.1f)\n",
		s.Skills.Fishing, s.Skills.Hunting, s.Skills.Building)
}
