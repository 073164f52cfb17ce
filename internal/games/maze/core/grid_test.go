package core

import "testing"

func TestNewGridAllWall(t *testing.T) {
	g := NewGrid(7, 5)

	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			if g.At(x, y) != CellWall {
				t.Fatalf("Cell (%d,%d) = %v, expected CellWall", x, y, g.At(x, y))
			}
		}
	}
	if g.CountWalkable() != 0 {
		t.Errorf("Fresh grid CountWalkable = %d, expected 0", g.CountWalkable())
	}
}

func TestGridOutOfBoundsSolid(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(1, 1, CellPath)

	// Reads outside the grid are walls; writes are dropped.
	if g.At(-1, 0) != CellWall || g.At(5, 0) != CellWall || g.At(0, 5) != CellWall {
		t.Error("Out-of-bounds At should return CellWall")
	}
	g.Set(-1, -1, CellPath)
	g.Set(9, 9, CellPath)
	if g.CountWalkable() != 1 {
		t.Errorf("Out-of-bounds Set should be ignored, CountWalkable = %d", g.CountWalkable())
	}
	if g.Walkable(-1, 0) {
		t.Error("Out-of-bounds cells are never walkable")
	}
}

func TestGridWalkable(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, CellPath)
	g.Set(1, 2, CellCrumb)

	if !g.Walkable(1, 1) {
		t.Error("Path cells are walkable")
	}
	if !g.Walkable(1, 2) {
		t.Error("Breadcrumb cells stay walkable")
	}
	if g.Walkable(0, 0) {
		t.Error("Wall cells are not walkable")
	}
}

func TestGridEqual(t *testing.T) {
	a := NewGrid(3, 3)
	b := NewGrid(3, 3)
	a.Set(1, 1, CellPath)
	b.Set(1, 1, CellPath)

	if !a.Equal(b) {
		t.Error("Identical grids should be equal")
	}

	b.Set(1, 1, CellCrumb)
	if a.Equal(b) {
		t.Error("Differing cells should break equality")
	}

	if a.Equal(NewGrid(3, 5)) {
		t.Error("Differing dimensions should break equality")
	}
	if a.Equal(nil) {
		t.Error("Nil grid is never equal")
	}
}

func TestGridString(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(1, 0, CellPath)
	g.Set(1, 1, CellCrumb)

	expected := "# #\n#.#"
	if got := g.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
