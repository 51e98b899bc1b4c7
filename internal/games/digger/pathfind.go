package digger

// WalkFunc reports whether a tile may be entered under some capability profile.
type WalkFunc func(c Coord) bool

// Neighbors returns the walkable neighbors of c in the fixed order
// up, down, left, right.
func Neighbors(c Coord, walk WalkFunc) []Coord {
	out := make([]Coord, 0, len(neighborOrder))
	for _, d := range neighborOrder {
		if n := c.Step(d); walk(n) {
			out = append(out, n)
		}
	}
	return out
}

// NextStep runs a breadth-first search from start to goal over a w×h tile
// area and returns the first tile of a shortest path. Neighbors are expanded
// in a fixed order, so identical grids always yield the same step.
// The second result is false when start equals goal or no path exists.
func NextStep(w, h int, start, goal Coord, walk WalkFunc) (Coord, bool) {
	if start == goal {
		return start, false
	}
	inArea := func(c Coord) bool {
		return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
	}
	if !inArea(start) || !inArea(goal) {
		return start, false
	}

	idx := func(c Coord) int { return c.Y*w + c.X }
	parent := make([]int, w*h)
	for i := range parent {
		parent[i] = -1
	}
	parent[idx(start)] = idx(start)

	queue := []Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range neighborOrder {
			n := cur.Step(d)
			if !inArea(n) || parent[idx(n)] != -1 || !walk(n) {
				continue
			}
			parent[idx(n)] = idx(cur)
			if n == goal {
				return firstStep(parent, idx(start), idx(goal), w), true
			}
			queue = append(queue, n)
		}
	}
	return start, false
}

// firstStep walks parent links back from goal to the tile adjacent to start.
func firstStep(parent []int, start, goal, w int) Coord {
	i := goal
	for parent[i] != start {
		i = parent[i]
	}
	return Coord{X: i % w, Y: i / w}
}

// FleeStep returns the walkable neighbor of c farthest from threat by
// Manhattan distance. Ties go to the first neighbor in the fixed order.
// It does not search beyond the immediate neighbors.
func FleeStep(c, threat Coord, walk WalkFunc) (Coord, bool) {
	best, bestDist, found := c, -1, false
	for _, n := range Neighbors(c, walk) {
		if d := n.Manhattan(threat); d > bestDist {
			best, bestDist, found = n, d, true
		}
	}
	return best, found
}
