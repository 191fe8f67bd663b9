package world

import (
	"errors"
	"strings"
)

var ErrInvalidGrid = errors.New("invalid grid")

type TileMap interface {
	Width() int
	Height() int
	At(p Point) TileCode
	Set(p Point, code TileCode)
}

type Grid struct {
	width  int
	height int
	cells  []TileCode
}

func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{width: width, height: height, cells: make([]TileCode, width*height)}
	g.Fill(TileEmpty)
	return g
}

// ParseGrid builds a grid from rows of tile characters; all rows must share a width.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidGrid
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.width {
			return nil, ErrInvalidGrid
		}
		for x := 0; x < len(row); x++ {
			g.cells[y*g.width+x] = TileCode(row[x])
		}
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns TileEmpty outside the grid.
func (g *Grid) At(p Point) TileCode {
	if !g.InBounds(p) {
		return TileEmpty
	}
	return g.cells[p.Y*g.width+p.X]
}

func (g *Grid) Set(p Point, code TileCode) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Y*g.width+p.X] = code
}

func (g *Grid) Fill(code TileCode) {
	for i := range g.cells {
		g.cells[i] = code
	}
}

func (g *Grid) Clone() *Grid {
	out := &Grid{width: g.width, height: g.height, cells: make([]TileCode, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

func (g *Grid) Rows() []string {
	out := make([]string, 0, g.height)
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		b.Reset()
		for x := 0; x < g.width; x++ {
			b.WriteByte(byte(g.cells[y*g.width+x]))
		}
		out = append(out, b.String())
	}
	return out
}

func InBounds(m TileMap, p Point) bool {
	return p.X >= 0 && p.X < m.Width() && p.Y >= 0 && p.Y < m.Height()
}

// Nearest scans the whole map in row-major order and returns the
// Manhattan-closest tile of the given code. Ties keep the first match.
func Nearest(m TileMap, code TileCode, from Point) (Point, bool) {
	best := Point{}
	bestDist := -1
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := Point{X: x, Y: y}
			if m.At(p) != code {
				continue
			}
			d := p.Manhattan(from)
			if bestDist < 0 || d < bestDist {
				best, bestDist = p, d
			}
		}
	}
	return best, bestDist >= 0
}

func Contains(m TileMap, code TileCode) bool {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.At(Point{X: x, Y: y}) == code {
				return true
			}
		}
	}
	return false
}

func Count(m TileMap, code TileCode) int {
	n := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.At(Point{X: x, Y: y}) == code {
				n++
			}
		}
	}
	return n
}

// ClampInterior keeps p inside [1,w-2]x[1,h-2].
func ClampInterior(m TileMap, p Point) Point {
	return Point{
		X: clampInt(p.X, 1, m.Width()-2),
		Y: clampInt(p.Y, 1, m.Height()-2),
	}
}

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
