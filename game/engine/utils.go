package engine

// ManhattanDistance calculates the Manhattan distance between two cells
func ManhattanDistance(from, to Cell) int {
	return abs(from.X-to.X) + abs(from.Y-to.Y)
}

// TileSizeFor returns the tile edge in pixels for a surface of the given
// width, never smaller than MinTileSize
func TileSizeFor(width, cols int) int {
	if cols <= 0 {
		return MinTileSize
	}
	size := width / cols
	if size < MinTileSize {
		return MinTileSize
	}
	return size
}

// PassableNeighbors returns the open cells one step away from c, in
// Headings order
func PassableNeighbors(grid *Grid, c Cell) []Cell {
	var out []Cell
	for _, h := range Headings {
		n := c.Add(h)
		if grid.IsPassable(n) {
			out = append(out, n)
		}
	}
	return out
}

// ReachableFrom returns the breadth-first step distance from start to every
// passable cell connected to it
func ReachableFrom(grid *Grid, start Cell) map[Cell]int {
	dist := make(map[Cell]int)
	if !grid.IsPassable(start) {
		return dist
	}

	dist[start] = 0
	queue := []Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range PassableNeighbors(grid, cur) {
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// DeadEnds returns every passable cell with exactly one open neighbour
func DeadEnds(grid *Grid) []Cell {
	var out []Cell
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			c := Cell{X: x, Y: y}
			if grid.IsPassable(c) && len(PassableNeighbors(grid, c)) == 1 {
				out = append(out, c)
			}
		}
	}
	return out
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
