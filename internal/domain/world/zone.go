package world

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) Manhattan(o Point) int {
	return absInt(p.X-o.X) + absInt(p.Y-o.Y)
}

func (p Point) Chebyshev(o Point) int {
	dx, dy := absInt(p.X-o.X), absInt(p.Y-o.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
