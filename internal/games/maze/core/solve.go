package core

// Solve returns the shortest walkable path from one cell to another as a
// sequence of points including both endpoints, or nil if either endpoint
// is solid or no route exists. In a perfect maze the shortest path is the
// only path, so the result doubles as the unique solution.
func Solve(g *Grid, from, to Point) []Point {
	if !g.Walkable(from.X, from.Y) || !g.Walkable(to.X, to.Y) {
		return nil
	}
	if from == to {
		return []Point{from}
	}

	// Plain breadth-first search over the four neighbors.
	prev := make(map[Point]Point, g.Width*g.Height/2)
	visited := make(map[Point]bool, g.Width*g.Height/2)
	visited[from] = true

	queue := []Point{from}
	found := false

	for len(queue) > 0 && !found {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			next := Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if visited[next] || !g.Walkable(next.X, next.Y) {
				continue
			}
			visited[next] = true
			prev[next] = cur
			if next == to {
				found = true
				break
			}
			queue = append(queue, next)
		}
	}

	if !found {
		return nil
	}

	// Walk the chain back and reverse it.
	path := []Point{to}
	for cur := to; cur != from; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
