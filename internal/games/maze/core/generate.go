package core

import (
	"errors"
	"fmt"
)

// ErrNoPathCells is returned when exit placement finds no open cell at
// all. The carve loop cannot produce such a grid, so seeing this error
// means the grid was corrupted between generation and placement.
var ErrNoPathCells = errors.New("maze: grid contains no path cells")

// Maze is the product of Generate: the carved grid plus the fixed start
// and exit cells.
type Maze struct {
	Grid  *Grid
	Start Point
	Exit  Point
}

// Neighbor offsets in carve order: up, right, down, left. Cells are
// visited in steps of two so walls stay on even rows/columns.
var carveDX = [4]int{0, 2, 0, -2}
var carveDY = [4]int{-2, 0, 2, 0}

// Generate carves a perfect maze of the given dimensions using the
// recursive-backtracker algorithm, iterative with an explicit stack.
// Both dimensions must be odd and at least 5; the config layer enforces
// this before play, and Generate rejects violations for library callers.
//
// The maze shape is a pure function of (width, height, seed): each visit
// shuffles the four directions with a Fisher-Yates pass drawing
// rng.Next() % (i+1) for i = 3..1, then carves toward the first in-border
// unvisited neighbor. Changing that consumption order changes every maze,
// so determinism tests pin it.
//
// The exit defaults to (width-2, height-2). If generation left that cell
// solid, the nearest open cell in the 5x5 window up-left of it is used;
// if the window is all wall the whole grid is scanned for the open cell
// closest to the corner. An entirely solid grid returns ErrNoPathCells.
func Generate(width, height int, rng *RNG) (*Maze, error) {
	if width < 5 || height < 5 || width%2 == 0 || height%2 == 0 {
		return nil, fmt.Errorf("maze: dimensions must be odd and >= 5, got %dx%d", width, height)
	}

	g := NewGrid(width, height)
	start := Point{X: 1, Y: 1}
	g.Set(start.X, start.Y, CellPath)

	// Only every second cell in each axis is ever pushed.
	stack := make([]Point, 0, (width*height)/4+1)
	stack = append(stack, start)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		dirs := [4]int{0, 1, 2, 3}
		for i := 3; i > 0; i-- {
			j := rng.Intn(i + 1)
			dirs[i], dirs[j] = dirs[j], dirs[i]
		}

		carved := false
		for _, d := range dirs {
			nx := cur.X + carveDX[d]
			ny := cur.Y + carveDY[d]

			// Strictly inside the border and still unvisited.
			if nx <= 0 || nx >= width-1 || ny <= 0 || ny >= height-1 {
				continue
			}
			if g.At(nx, ny) != CellWall {
				continue
			}

			// Open the wall between, then the neighbor itself.
			g.Set(cur.X+carveDX[d]/2, cur.Y+carveDY[d]/2, CellPath)
			g.Set(nx, ny, CellPath)
			stack = append(stack, Point{X: nx, Y: ny})
			carved = true
			break
		}

		if !carved {
			stack = stack[:len(stack)-1]
		}
	}

	exit, err := placeExit(g)
	if err != nil {
		return nil, err
	}

	return &Maze{Grid: g, Start: start, Exit: exit}, nil
}

// placeExit picks the exit cell near the bottom-right corner.
func placeExit(g *Grid) (Point, error) {
	corner := Point{X: g.Width - 2, Y: g.Height - 2}
	if g.At(corner.X, corner.Y) == CellPath {
		return corner, nil
	}

	// Local window first: offsets (0,0) down to (-4,-4) from the corner.
	for ox := 0; ox >= -4; ox-- {
		for oy := 0; oy >= -4; oy-- {
			tx := corner.X + ox
			ty := corner.Y + oy
			if tx > 0 && ty > 0 && g.At(tx, ty) == CellPath {
				return Point{X: tx, Y: ty}, nil
			}
		}
	}

	// Window exhausted: scan the whole grid for the open cell closest to
	// the corner. Ties resolve in scan order, keeping placement
	// deterministic.
	best := Point{X: -1, Y: -1}
	bestDist := g.Width + g.Height + 1
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if g.At(x, y) != CellPath {
				continue
			}
			d := abs(corner.X-x) + abs(corner.Y-y)
			if d < bestDist {
				best = Point{X: x, Y: y}
				bestDist = d
			}
		}
	}
	if best.X < 0 {
		return Point{}, ErrNoPathCells
	}
	return best, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
