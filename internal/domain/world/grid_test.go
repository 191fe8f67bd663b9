package world

import "testing"

func TestGridAtSetAndBounds(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(Point{X: 2, Y: 1}, TileTree)
	if got := g.At(Point{X: 2, Y: 1}); got != TileTree {
		t.Fatalf("expected tree, got %s", got)
	}
	g.Set(Point{X: 9, Y: 9}, TileRiver)
	if got := g.At(Point{X: 9, Y: 9}); got != TileEmpty {
		t.Fatalf("out of bounds read should be empty, got %s", got)
	}
	if g.InBounds(Point{X: -1, Y: 0}) || g.InBounds(Point{X: 4, Y: 0}) {
		t.Fatalf("expected out of bounds")
	}
}

func TestParseGridRejectsRaggedRows(t *testing.T) {
	if _, err := ParseGrid("...", ".."); err != ErrInvalidGrid {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}
	if _, err := ParseGrid(); err != ErrInvalidGrid {
		t.Fatalf("expected ErrInvalidGrid for empty input, got %v", err)
	}
}

func TestNearestUsesManhattanDistance(t *testing.T) {
	g, err := ParseGrid(
		"Y.....",
		"......",
		"...Y..",
		"......",
	)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	p, ok := Nearest(g, TileTree, Point{X: 5, Y: 3})
	if !ok {
		t.Fatalf("expected a tree")
	}
	if p != (Point{X: 3, Y: 2}) {
		t.Fatalf("expected (3,2), got %+v", p)
	}
	if _, ok := Nearest(g, TileRiver, Point{}); ok {
		t.Fatalf("expected no river")
	}
}

func TestNearestTieKeepsRowMajorFirst(t *testing.T) {
	g, _ := ParseGrid(
		".=.",
		"...",
		".=.",
	)
	p, ok := Nearest(g, TileRiver, Point{X: 1, Y: 1})
	if !ok || p != (Point{X: 1, Y: 0}) {
		t.Fatalf("expected first river (1,0), got %+v ok=%v", p, ok)
	}
}

func TestContainsAndCount(t *testing.T) {
	g, _ := ParseGrid("LL.", "P..")
	if !Contains(g, TileStockpile) {
		t.Fatalf("expected stockpile")
	}
	if Contains(g, TileCabinWall) {
		t.Fatalf("did not expect cabin wall")
	}
	if n := Count(g, TileLog); n != 2 {
		t.Fatalf("expected 2 logs, got %d", n)
	}
}

func TestClampInterior(t *testing.T) {
	g := NewGrid(10, 6)
	if got := ClampInterior(g, Point{X: 0, Y: 9}); got != (Point{X: 1, Y: 4}) {
		t.Fatalf("expected (1,4), got %+v", got)
	}
	if got := ClampInterior(g, Point{X: 9, Y: -3}); got != (Point{X: 8, Y: 1}) {
		t.Fatalf("expected (8,1), got %+v", got)
	}
}

func TestRowsAndClone(t *testing.T) {
	g, _ := ParseGrid("Y=", "LP")
	c := g.Clone()
	c.Set(Point{X: 0, Y: 0}, TileEmpty)
	rows := g.Rows()
	if rows[0] != "Y=" || rows[1] != "LP" {
		t.Fatalf("clone mutated source: %v", rows)
	}
	if c.Rows()[0] != ".=" {
		t.Fatalf("unexpected clone rows %v", c.Rows())
	}
}
