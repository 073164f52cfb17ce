package core

import "strings"

// Cell is the state of one grid unit.
type Cell uint8

const (
	// CellWall is solid; the player can never occupy it.
	CellWall Cell = iota
	// CellPath is open floor carved by the generator.
	CellPath
	// CellCrumb is a breadcrumb: floor the player has already vacated.
	// Walkability treats it exactly like CellPath; it exists only so the
	// renderer can draw the trail.
	CellCrumb
)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Grid is a Width x Height field of cells. The generator fully overwrites
// it; afterwards the only mutation is the breadcrumb the walker leaves on
// vacated cells.
type Grid struct {
	Width  int
	Height int
	cells  []Cell
}

// NewGrid allocates a grid with every cell set to CellWall.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at (x, y). Out-of-bounds reads return CellWall, so
// everything beyond the grid is solid.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return CellWall
	}
	return g.cells[y*g.Width+x]
}

// Set writes the cell at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.Width+x] = c
}

// Walkable reports whether the player may occupy (x, y).
func (g *Grid) Walkable(x, y int) bool {
	c := g.At(x, y)
	return c == CellPath || c == CellCrumb
}

// CountWalkable returns the number of non-wall cells.
func (g *Grid) CountWalkable() int {
	n := 0
	for _, c := range g.cells {
		if c != CellWall {
			n++
		}
	}
	return n
}

// Equal reports whether two grids have identical dimensions and cells.
// Used by determinism tests.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid as ASCII, one row per line: '#' wall, ' ' path,
// '.' breadcrumb. Used by the gen command and debugging.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			switch g.At(x, y) {
			case CellWall:
				sb.WriteByte('#')
			case CellCrumb:
				sb.WriteByte('.')
			default:
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}
