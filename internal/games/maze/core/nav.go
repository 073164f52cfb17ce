package core

// Direction is a player movement intent.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Delta returns the unit offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Walker moves a player through a generated maze, counting moves and
// leaving a breadcrumb on every vacated cell. It owns the only mutation
// the grid sees after generation.
type Walker struct {
	grid  *Grid
	pos   Point
	exit  Point
	moves int
}

// NewWalker places a player at the maze's start cell.
func NewWalker(m *Maze) *Walker {
	return &Walker{
		grid: m.Grid,
		pos:  m.Start,
		exit: m.Exit,
	}
}

// TryMove attempts one step. It returns false without any state change
// when the target cell is out of bounds or solid; otherwise it drops a
// breadcrumb on the vacated cell, moves the player, increments the move
// counter and returns true.
func (w *Walker) TryMove(d Direction) bool {
	dx, dy := d.Delta()
	nx, ny := w.pos.X+dx, w.pos.Y+dy

	if !w.grid.Walkable(nx, ny) {
		return false
	}

	w.grid.Set(w.pos.X, w.pos.Y, CellCrumb)
	w.pos = Point{X: nx, Y: ny}
	w.moves++
	return true
}

// Pos returns the player's current cell.
func (w *Walker) Pos() Point {
	return w.pos
}

// Exit returns the maze's exit cell.
func (w *Walker) Exit() Point {
	return w.exit
}

// Moves returns the number of successful steps taken.
func (w *Walker) Moves() int {
	return w.moves
}

// AtExit reports whether the player stands on the exit cell.
func (w *Walker) AtExit() bool {
	return w.pos == w.exit
}
