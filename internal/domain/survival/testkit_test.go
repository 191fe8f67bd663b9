package survival

import "github.com/stealthstack/survivesimgame/internal/domain/world"

// stubRand replays scripted draws. Once a script runs out it returns a
// value that takes no probabilistic branch.
type stubRand struct {
	floats []float64
	norms  []float64
	ints   []int
	fi     int
	ni     int
	ii     int
}

func (r *stubRand) Float64() float64 {
	if r.fi < len(r.floats) {
		v := r.floats[r.fi]
		r.fi++
		return v
	}
	r.fi++
	return 0.999
}

func (r *stubRand) NormFloat64() float64 {
	if r.ni < len(r.norms) {
		v := r.norms[r.ni]
		r.ni++
		return v
	}
	return 0
}

func (r *stubRand) IntN(n int) int {
	if r.ii < len(r.ints) {
		v := r.ints[r.ii]
		r.ii++
		if v >= n {
			return n - 1
		}
		return v
	}
	return 0
}

func mustGrid(rows ...string) *world.Grid {
	g, err := world.ParseGrid(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

func emptyGrid(w, h int) *world.Grid {
	return world.NewGrid(w, h)
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}

var _ Rand = (*stubRand)(nil)
