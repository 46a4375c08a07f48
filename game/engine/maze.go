package engine

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyLayout          = errors.New("layout is empty")
	ErrRaggedLayout         = errors.New("layout rows have inconsistent lengths")
	ErrUnknownTile          = errors.New("unknown tile code")
	ErrNoPlayerSpawn        = errors.New("layout has no player spawn")
	ErrMultiplePlayerSpawns = errors.New("layout has more than one player spawn")
)

// defaultLayout is the maze shipped with the game. It is enclosed by walls,
// has one player spawn and four opponent spawns.
var defaultLayout = [...]string{
	"###################",
	"#........#........#",
	"#.###.##.#.##.###.#",
	"#G#.......P.....#G#",
	"#.###.#.###.#.###.#",
	"#.....#...#.#.....#",
	"###.#.#####.#.#.###",
	"#...#...#...#...#.#",
	"#.#####.#.#####.#.#",
	"#...............#.#",
	"#.#####.#.#####.#.#",
	"#.#...#...#...#...#",
	"#.#.#.#####.#.###.#",
	"#.....#...#.#.....#",
	"#.###.#.###.#.###.#",
	"#G#.............#G#",
	"#.###.##.#.##.###.#",
	"#........#........#",
	"###################",
}

// DefaultLayout returns a copy of the built-in maze rows
func DefaultLayout() []string {
	rows := make([]string, len(defaultLayout))
	copy(rows, defaultLayout[:])
	return rows
}

// Grid is a fixed-size rectangular array of tiles
type Grid struct {
	cols  int
	rows  int
	tiles []TileKind
}

// NewGrid creates a grid of the given size filled with walls
func NewGrid(cols, rows int) *Grid {
	return &Grid{
		cols:  cols,
		rows:  rows,
		tiles: make([]TileKind, cols*rows),
	}
}

// Cols returns the grid width in cells
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in cells
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether c lies inside the grid
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.cols && c.Y >= 0 && c.Y < g.rows
}

// At returns the tile at c. Cells outside the grid read as walls.
func (g *Grid) At(c Cell) TileKind {
	if !g.InBounds(c) {
		return Wall
	}
	return g.tiles[c.Y*g.cols+c.X]
}

// Set replaces the tile at c, reporting false when c is out of bounds
func (g *Grid) Set(c Cell, kind TileKind) bool {
	if !g.InBounds(c) {
		return false
	}
	g.tiles[c.Y*g.cols+c.X] = kind
	return true
}

// IsWall reports whether c blocks movement
func (g *Grid) IsWall(c Cell) bool {
	return g.At(c) == Wall
}

// IsPassable reports whether an actor may occupy c
func (g *Grid) IsPassable(c Cell) bool {
	return g.At(c) != Wall
}

// Count returns the number of cells holding kind
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for _, t := range g.tiles {
		if t == kind {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{cols: g.cols, rows: g.rows, tiles: make([]TileKind, len(g.tiles))}
	copy(c.tiles, g.tiles)
	return c
}

// Maze is the result of parsing a layout
type Maze struct {
	Grid           *Grid
	PlayerSpawn    Cell
	OpponentSpawns []Cell
	Consumables    int
}

// ParseLayout converts layout rows into a grid. Spawn markers become
// consumable cells and their coordinates are recorded separately, in
// row-major order for the opponents.
func ParseLayout(rows []string) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}

	cols := len(rows[0])
	grid := NewGrid(cols, len(rows))
	maze := &Maze{Grid: grid}
	foundPlayer := false

	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d characters, expected %d", ErrRaggedLayout, y+1, len(row), cols)
		}
		for x := 0; x < cols; x++ {
			c := Cell{X: x, Y: y}
			switch row[x] {
			case WallChar:
				grid.Set(c, Wall)
			case EmptyChar:
				grid.Set(c, Empty)
			case ConsumableChar:
				grid.Set(c, Consumable)
				maze.Consumables++
			case PlayerChar:
				if foundPlayer {
					return nil, fmt.Errorf("%w: second spawn at (%d,%d)", ErrMultiplePlayerSpawns, x, y)
				}
				foundPlayer = true
				maze.PlayerSpawn = c
				grid.Set(c, Consumable)
				maze.Consumables++
			case OpponentChar:
				maze.OpponentSpawns = append(maze.OpponentSpawns, c)
				grid.Set(c, Consumable)
				maze.Consumables++
			default:
				return nil, fmt.Errorf("%w: '%c' at row %d, col %d", ErrUnknownTile, row[x], y+1, x+1)
			}
		}
	}

	if !foundPlayer {
		return nil, ErrNoPlayerSpawn
	}

	return maze, nil
}
